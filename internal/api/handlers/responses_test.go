package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRespondJSON_NilBodyIsEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondHelpers(t *testing.T) {
	tests := []struct {
		name       string
		respond    func(w http.ResponseWriter)
		wantStatus int
		wantReason string
	}{
		{
			name:       "bad request",
			respond:    func(w http.ResponseWriter) { RespondBadRequest(w, "дата обязательна") },
			wantStatus: http.StatusBadRequest,
			wantReason: ReasonIncompleteRequest,
		},
		{
			name:       "conflict",
			respond:    func(w http.ResponseWriter) { RespondConflict(w, "слот занят") },
			wantStatus: http.StatusConflict,
			wantReason: ReasonSlotTaken,
		},
		{
			name:       "not found",
			respond:    func(w http.ResponseWriter) { RespondNotFound(w, "ресурс не найден") },
			wantStatus: http.StatusNotFound,
			wantReason: ReasonNotFound,
		},
		{
			name:       "internal error",
			respond:    func(w http.ResponseWriter) { RespondInternalError(w) },
			wantStatus: http.StatusInternalServerError,
			wantReason: ReasonInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)

			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantReason, resp.Reason)
			assert.NotEmpty(t, resp.Message)
		})
	}
}
