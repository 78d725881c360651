package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as an application/json response with statusCode.
// When data cannot be encoded the client gets a plain 500 instead and the
// encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(payload)
}
