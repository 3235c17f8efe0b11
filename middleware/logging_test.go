package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notevault/middleware"
)

// logLine decodes the single JSON log record written to buf.
func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestLogging(t *testing.T) {
	t.Run("logs method path and status", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		h := middleware.LoggingWithLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/notes", nil))

		record := logLine(t, &buf)
		assert.Equal(t, "request completed", record["msg"])
		assert.Equal(t, "POST", record["method"])
		assert.Equal(t, "/api/notes", record["path"])
		assert.EqualValues(t, http.StatusCreated, record["status_code"])
	})

	t.Run("server errors log at error level", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		h := middleware.LoggingWithLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		record := logLine(t, &buf)
		assert.Equal(t, "ERROR", record["level"])
	})

	t.Run("includes request id when present", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string { return "req-123" },
		})(middleware.LoggingWithLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		record := logLine(t, &buf)
		assert.Equal(t, "req-123", record["request_id"])
	})

	t.Run("skip suppresses the log line", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		h := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip:   func(r *http.Request) bool { return r.URL.Path == "/live" },
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/live", nil))
		assert.Zero(t, buf.Len())
	})

	t.Run("implicit 200 without WriteHeader", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		h := middleware.LoggingWithLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		record := logLine(t, &buf)
		assert.EqualValues(t, http.StatusOK, record["status_code"])
	})
}
