package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notevault/middleware"
)

func TestClientIP(t *testing.T) {
	t.Run("stores the extracted ip in context", func(t *testing.T) {
		var seen string
		h := middleware.ClientIP()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, ok := middleware.GetClientIP(r.Context())
			require.True(t, ok)
			seen = ip
		}))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "198.51.100.7")
		h.ServeHTTP(httptest.NewRecorder(), r)

		assert.Equal(t, "198.51.100.7", seen)
	})

	t.Run("absent without the middleware", func(t *testing.T) {
		_, ok := middleware.GetClientIP(httptest.NewRequest("GET", "/", nil).Context())
		assert.False(t, ok)
	})
}
