package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/notevault/core/logger"
	"github.com/dmitrymomot/notevault/core/response"
)

// Readiness verifies all service dependencies are functioning.
// Answers "READY" when every check passes, 503 Service Unavailable otherwise.
//
//	r.Get("/ready", health.Readiness(log,
//		pg.Healthcheck(db),
//		storage.Healthcheck(),
//	))
func Readiness(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Component("health"),
					logger.Error(err),
				)
				response.Error(w, response.ErrServiceUnavailable)
				return
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
