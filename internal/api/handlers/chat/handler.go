package chat

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	chatUC "github.com/m04kA/BRB-BookingService/internal/usecase/chat"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyMessage       = "сообщение не может быть пустым"
)

type Handler struct {
	useCase ChatUseCase
	logger  Logger
}

func NewHandler(useCase ChatUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/chat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &chatUC.Request{Message: req.Message})
	if err != nil {
		switch {
		case errors.Is(err, chatUC.ErrEmptyMessage):
			h.logger.Warn("POST /chat - Empty message")
			handlers.RespondBadRequest(w, msgEmptyMessage)

		default:
			h.logger.Error("POST /chat - Failed to process message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chat - Reply sent, length=%d", len(result.Reply))
	handlers.RespondJSON(w, http.StatusOK, ChatResponse{Reply: result.Reply})
}
