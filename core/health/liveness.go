package health

import "net/http"

// Liveness indicates the service process is running.
// Always answers "ALIVE" with 200 OK and checks no dependencies.
func Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

// NoContent answers 204 without a body. Suited for high-frequency pings.
func NoContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
