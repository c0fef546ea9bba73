package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
// Операция идемпотентна: удаление несуществующего ID — тоже 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	err = h.service.Delete(r.Context(), bookingID)
	if err != nil && !errors.Is(err, bookings.ErrBookingNotFound) {
		h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%d, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	if errors.Is(err, bookings.ErrBookingNotFound) {
		h.logger.Warn("DELETE /bookings/{id} - Booking not found, treating as no-op: booking_id=%d", bookingID)
	} else {
		h.logger.Info("DELETE /bookings/{id} - Booking deleted successfully: booking_id=%d", bookingID)
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
