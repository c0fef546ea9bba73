package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Все три поля обязательны; отсутствие любого из них — единый исход
// "неполный запрос". Дальше валидации запрос не проверяется: решение о
// доступности слота принимает атомарная вставка.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long (max %d)", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}
