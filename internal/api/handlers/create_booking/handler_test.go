package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/BRB-BookingService/internal/usecase/create_booking"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeUseCase use case с заранее заданным исходом
type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:           1,
		CustomerName: "Ana",
		StartTime:    "14:00",
	}}

	rec := doRequest(t, uc, `{"customerName":"Ana","date":"2025-10-10","time":"14:00"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Ana", resp.CustomerName)
	assert.Equal(t, "14:00", resp.Time)

	// Дата и время дошли до use case распарсенными
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "2025-10-10", uc.gotReq.Date.Format("2006-01-02"))
	assert.Equal(t, "14:00", uc.gotReq.StartTime.String())
}

func TestHandle_IncompleteRequest(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInvalidInput}

	rec := doRequest(t, uc, `{"customerName":"","date":"2025-10-10","time":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.ReasonIncompleteRequest, resp.Reason)
}

func TestHandle_SlotTaken(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotNotAvailable}

	rec := doRequest(t, uc, `{"customerName":"Bruno","date":"2025-10-10","time":"14:00"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.ReasonSlotTaken, resp.Reason)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	// Непустая, но кривая дата отклоняется до вызова use case
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"customerName":"Ana","date":"10/10/2025","time":"14:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}

	rec := doRequest(t, uc, `{"customerName":"Ana","date":"2025-10-10","time":"14:00"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.ReasonInternalError, resp.Reason)
}
