package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notevault/middleware"
)

func TestRequestID(t *testing.T) {
	t.Run("generates and exposes an id", func(t *testing.T) {
		var seen string
		h := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := middleware.GetRequestID(r.Context())
			require.True(t, ok)
			seen = id
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
	})

	t.Run("unique per request", func(t *testing.T) {
		h := middleware.RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		first := httptest.NewRecorder()
		h.ServeHTTP(first, httptest.NewRequest("GET", "/", nil))
		second := httptest.NewRecorder()
		h.ServeHTTP(second, httptest.NewRequest("GET", "/", nil))

		assert.NotEqual(t, first.Header().Get("X-Request-ID"), second.Header().Get("X-Request-ID"))
	})

	t.Run("ignores inbound header by default", func(t *testing.T) {
		h := middleware.RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Request-ID", "spoofed")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.NotEqual(t, "spoofed", w.Header().Get("X-Request-ID"))
	})

	t.Run("reuses inbound header when configured", func(t *testing.T) {
		h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true})(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Request-ID", "upstream-id")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, "upstream-id", w.Header().Get("X-Request-ID"))
	})

	t.Run("custom generator and header", func(t *testing.T) {
		h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			HeaderName: "X-Trace-ID",
			Generator:  func() string { return "fixed" },
		})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, "fixed", w.Header().Get("X-Trace-ID"))
	})
}

func TestGetRequestID_Absent(t *testing.T) {
	_, ok := middleware.GetRequestID(httptest.NewRequest("GET", "/", nil).Context())
	assert.False(t, ok)
}
