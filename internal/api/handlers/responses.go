package handlers

import (
	"encoding/json"
	"net/http"
)

// Машиночитаемые коды причин отказа
// Код стабилен для клиентов, текст сообщения — нет.
const (
	ReasonIncompleteRequest = "incomplete_request"
	ReasonSlotTaken         = "slot_taken"
	ReasonNotFound          = "not_found"
	ReasonInternalError     = "internal_error"
)

const msgInternalError = "внутренняя ошибка сервиса"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

// RespondJSON пишет JSON ответ с указанным статусом
// nil body дает пустое тело (для 204 и подобных).
func RespondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	// Заголовки уже отправлены, ошибку кодирования фиксировать некуда
	_ = json.NewEncoder(w).Encode(body)
}

// RespondError пишет ответ с ошибкой: статус, код причины и сообщение
func RespondError(w http.ResponseWriter, status int, reason, message string) {
	RespondJSON(w, status, ErrorResponse{Reason: reason, Message: message})
}

// RespondBadRequest пишет 400 с кодом причины incomplete_request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, ReasonIncompleteRequest, message)
}

// RespondConflict пишет 409 с кодом причины slot_taken
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, ReasonSlotTaken, message)
}

// RespondNotFound пишет 404 с кодом причины not_found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, ReasonNotFound, message)
}

// RespondInternalError пишет 500 с нейтральным сообщением
// Детали инфраструктурной ошибки остаются в логах, клиенту не утекают.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, ReasonInternalError, msgInternalError)
}
