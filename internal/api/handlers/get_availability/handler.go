package get_availability

import (
	"net/http"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/BRB-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate = "дата обязательна"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD)
// Некорректная дата не является ошибкой: use case вернет пустой список слотов.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: dateStr})
	if err != nil {
		h.logger.Error("GET /slots - Failed to get availability: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Availability retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
