package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/booking"
)

// UseCase use case создания бронирования
//
// Предварительного чтения доступности здесь нет намеренно: оно сузило бы
// окно гонки, но не закрыло его. Единственный арбитр — атомарная вставка
// CreateIfFree поверх уникального индекса (дата, время).
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%q, date=%s, time=%s",
		req.CustomerName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Атомарная вставка — одновременно проверка и фиксация слота
	booking := &domain.Booking{
		CustomerName: req.CustomerName,
		BookingDate:  req.Date,
		StartTime:    req.StartTime,
	}

	created, err := uc.bookingRepo.CreateIfFree(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			// Для диагностики конфликтов логируем, какая запись держит слот
			if existing, lookupErr := uc.bookingRepo.GetByDateTime(ctx, req.Date, req.StartTime); lookupErr == nil {
				uc.logger.Warn("CreateBooking: slot taken by booking id=%d: date=%s, time=%s",
					existing.ID, req.Date.Format(domain.DateFormat), req.StartTime)
			} else {
				uc.logger.Warn("CreateBooking: slot taken: date=%s, time=%s",
					req.Date.Format(domain.DateFormat), req.StartTime)
			}
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	return &Response{
		ID:           created.ID,
		CustomerName: created.CustomerName,
		Date:         created.BookingDate,
		StartTime:    created.StartTime,
		CreatedAt:    created.CreatedAt,
	}, nil
}
