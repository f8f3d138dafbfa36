package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every error response: a single human-readable
// message under "error".
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body. Successful responses carry the entity
// directly, with no envelope.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError sets Content-Type to application/json, writes statusCode,
// and encodes an ErrorResponse with the given message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
