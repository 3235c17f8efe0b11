package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/notevault/pkg/clientip"
)

// clientIPContextKey is an unexported key type to avoid context collisions.
type clientIPContextKey struct{}

// ClientIP extracts the real client address from the proxy headers and
// stores it in the request context for logging and rate limiting.
func ClientIP() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), clientIPContextKey{}, clientip.GetIP(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientIP retrieves the client IP stored by ClientIP. The boolean
// is false when the middleware did not run.
func GetClientIP(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey{}).(string)
	return ip, ok
}
