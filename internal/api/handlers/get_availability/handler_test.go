package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/domain"
	getAvailability "github.com/m04kA/BRB-BookingService/internal/usecase/get_availability"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp   *getAvailability.Response
	err    error
	gotReq *getAvailability.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc GetAvailabilityUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailability.Response{
		Date: "2025-10-10",
		Slots: []getAvailability.Slot{
			{StartTime: "09:00", Status: domain.SlotAvailable},
			{StartTime: "09:30", Status: domain.SlotBooked},
		},
	}}

	rec := doRequest(t, uc, "/api/v1/slots?date=2025-10-10")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-10-10", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, Slot{Time: "09:00", Status: "available"}, resp.Slots[0])
	assert.Equal(t, Slot{Time: "09:30", Status: "booked"}, resp.Slots[1])

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "2025-10-10", uc.gotReq.Date)
}

func TestHandle_MissingDate(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, "/api/v1/slots")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.ReasonIncompleteRequest, resp.Reason)
}

func TestHandle_EmptySlots(t *testing.T) {
	// Воскресенье и кривые даты отдаются как пустой список, не как ошибка
	uc := &fakeUseCase{resp: &getAvailability.Response{
		Date:  "2025-10-12",
		Slots: []getAvailability.Slot{},
	}}

	rec := doRequest(t, uc, "/api/v1/slots?date=2025-10-12")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Slots)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("db down")}

	rec := doRequest(t, uc, "/api/v1/slots?date=2025-10-10")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
