package chat

import (
	"context"
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
// Ассистент потребляет только чтение бронирований на сегодня. Создавать
// бронирования он не умеет принципиально: запись идет только через
// create_booking.
type BookingRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// ReplyGenerator интерфейс генеративной модели
// Модель — непрозрачный внешний сервис: промпт на входе, текст на выходе.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
