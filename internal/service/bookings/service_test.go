package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/booking"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeRepo репозиторий в памяти для тестов
type fakeRepo struct {
	bookings  []*domain.Booking
	listErr   error
	deleteErr error
	deleted   []int64
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestListAll(t *testing.T) {
	date := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{bookings: []*domain.Booking{
		{ID: 1, CustomerName: "Ana", BookingDate: date, StartTime: "09:00"},
		{ID: 2, CustomerName: "Bruno", BookingDate: date, StartTime: "14:00"},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	assert.Equal(t, "Ana", resp.Bookings[0].CustomerName)
	assert.Equal(t, "2025-10-10", resp.Bookings[0].Date)
	assert.Equal(t, "09:00", resp.Bookings[0].Time)
}

func TestListAll_Empty(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	resp, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestListAll_RepositoryError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeRepo{deleteErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete_RepositoryError(t *testing.T) {
	repo := &fakeRepo{deleteErr: bookingRepo.ErrExecQuery}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, errors.Is(err, ErrBookingNotFound))
}
