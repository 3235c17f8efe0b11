// Package response provides JSON response writers and a structured HTTP error
// type shared by all handlers.
//
// Success responses:
//
//	response.JSON(w, data)                          // 200
//	response.JSONWithStatus(w, http.StatusCreated, data)
//
// Error responses carry a machine-readable code and collapse internal detail:
//
//	response.Error(w, response.ErrUnauthorized)
//	response.Error(w, response.ErrConflict.WithMessage("email already registered"))
//
// Any error that is not an HTTPError is rendered as a generic 500 without
// exposing its message to the client.
package response
