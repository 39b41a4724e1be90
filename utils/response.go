package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error body. Suggestion carries a human hint for
// recoverable failures and is omitted when empty.
type ErrorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// WriteError writes a JSON error body with the given status code.
func WriteError(w http.ResponseWriter, status int, message, suggestion string) {
	WriteJSON(w, status, ErrorResponse{Error: message, Suggestion: suggestion})
}
