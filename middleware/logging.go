package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/notevault/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip exempts matching requests from logging. Used for health
	// probes that would otherwise flood the log.
	Skip func(r *http.Request) bool

	// Logger is the slog logger to use (default: slog.Default()).
	Logger *slog.Logger

	// LogLevel for completed requests (default: slog.LevelInfo).
	LogLevel slog.Level

	// SlowRequestThreshold promotes slow requests to warning level
	// (default: 5s).
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http").
	Component string
}

// Logging logs every completed request with the default configuration.
func Logging() func(http.Handler) http.Handler {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger logs requests through the given logger.
func LoggingWithLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig logs one structured line per completed request with
// method, path, status, duration and the IDs set by the other
// middleware in this package.
func LoggingWithConfig(cfg LoggingConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			elapsed := time.Since(start)

			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.StatusCode(wrapped.status),
				logger.Duration(elapsed),
			}
			if id, ok := GetRequestID(r.Context()); ok {
				attrs = append(attrs, logger.RequestID(id))
			}
			if ip, ok := GetClientIP(r.Context()); ok {
				attrs = append(attrs, logger.ClientIP(ip))
			}
			if ua := r.UserAgent(); ua != "" {
				attrs = append(attrs, logger.UserAgent(ua))
			}

			level := cfg.LogLevel
			msg := "request completed"
			switch {
			case wrapped.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case elapsed > cfg.SlowRequestThreshold:
				level = slog.LevelWarn
				msg = "slow request"
			}

			cfg.Logger.LogAttrs(r.Context(), level, msg, attrs...)
		})
	}
}

// statusWriter captures the response status for logging.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
