package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger логгер, собирающий отформатированные сообщения
type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, v...))
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seenID string

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r.Context())
		require.True(t, ok, "request ID must be present in the context")
		seenID = id
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil))

	assert.NotEmpty(t, seenID)
	assert.Equal(t, seenID, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_KeepsClientProvided(t *testing.T) {
	var seenID string

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID, _ = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-id", seenID)
	assert.Equal(t, "client-supplied-id", rec.Header().Get("X-Request-ID"))
}

func TestAccessLog_LogsStatusAndRequestID(t *testing.T) {
	log := &recordingLogger{}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	handler := RequestID(AccessLog(log)(inner))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
	req.Header.Set("X-Request-ID", "req-123")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Len(t, log.messages, 1)
	assert.Contains(t, log.messages[0], "POST /api/v1/bookings")
	assert.Contains(t, log.messages[0], "status=201")
	assert.Contains(t, log.messages[0], "request_id=req-123")
}
