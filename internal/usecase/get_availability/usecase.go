package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/schedule"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// UseCase use case получения доступности слотов на дату
//
// Чтение опережающее и ни от чего не защищает: между выдачей доступности и
// созданием бронирования слот может быть занят. Окончательное решение
// принимает атомарная вставка в create_booking.
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

// Execute выполняет use case получения доступности
//
// Для воскресенья и нераспарсиваемой даты возвращает пустой список слотов,
// а не ошибку: вызывающая сторона трактует это как "бронировать нечего".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date)

	// 1. Сетка кандидатов — чистая функция, без I/O
	candidates := schedule.CandidateSlots(req.Date)
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailability: no candidate slots for date=%s (closed day or unparseable date)", req.Date)
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	// Кандидаты непустые, значит дата валидна
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse date %q: %v", ErrInternal, req.Date, err)
	}

	// 2. Занятые времена из хранилища
	bookings, err := uc.bookingRepo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list bookings for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	booked := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		booked[b.StartTime] = struct{}{}
	}

	// 3. Сливаем сетку с занятыми временами
	slots := make([]Slot, len(candidates))
	for i, startTime := range candidates {
		status := domain.SlotAvailable
		if _, taken := booked[startTime]; taken {
			status = domain.SlotBooked
		}
		slots[i] = Slot{StartTime: startTime, Status: status}
	}

	uc.logger.Info("GetAvailability: date=%s, slots=%d, booked=%d", req.Date, len(slots), len(booked))

	return &Response{Date: req.Date, Slots: slots}, nil
}
