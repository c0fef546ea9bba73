package create_booking

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	createBooking "github.com/m04kA/BRB-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName string `json:"customerName"`
	Date         string `json:"date"` // "2025-10-15"
	Time         string `json:"time"` // "14:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые поля не парсятся и уходят в use case нулевыми: там они дают единый
// отказ "неполный запрос". Непустое, но кривое значение — ошибка формата.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		CustomerName: r.CustomerName,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if r.Time != "" {
		startTime, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		Date:         resp.Date.Format(domain.DateFormat),
		Time:         resp.StartTime.String(),
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
