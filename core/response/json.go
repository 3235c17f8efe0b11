package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as an application/json response with 200 OK status.
// Encoding goes directly to the response writer to avoid buffering the body.
func JSON(w http.ResponseWriter, v any) error {
	return JSONWithStatus(w, http.StatusOK, v)
}

// JSONWithStatus writes v as an application/json response with the given
// status code. A zero status defaults to 200 OK, or 204 No Content when v is
// nil. Statuses that must not carry a body (204, 304) suppress encoding.
func JSONWithStatus(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if status == 0 {
		if v == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}

	w.WriteHeader(status)

	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return nil
	}

	return json.NewEncoder(w).Encode(v)
}
