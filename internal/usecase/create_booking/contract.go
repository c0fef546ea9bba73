package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CreateIfFree атомарно создает бронирование, если слот свободен;
	// при занятом слоте возвращает booking.ErrSlotTaken
	CreateIfFree(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)

	// GetByDateTime возвращает бронирование, занимающее слот (дата, время)
	GetByDateTime(ctx context.Context, date time.Time, startTime types.TimeString) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
