// Package middleware provides the HTTP middleware the server mounts on
// every route: request ID assignment, client IP extraction and
// structured request logging. All middleware use the standard
// func(http.Handler) http.Handler shape so they compose with chi.
package middleware
