package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/BRB-BookingService/internal/service/bookings/models"
)

// Service сервис административных операций с бронированиями
// Выдача полного списка и удаление по ID — операторская часть интерфейса.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListAll получает все бронирования, отсортированные по дате и времени
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("ListAll: fetching all bookings")

	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование по ID
// Удаление несуществующего ID возвращает ErrBookingNotFound; на уровне API
// это успешный no-op — операция идемпотентна.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
