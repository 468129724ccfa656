// Package handler dispatches HTTP requests to the contact service and
// serializes results as JSON. Reads are keyed by the api query
// parameter, writes by the action form field.
package handler

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the JSON shape shared by every error response.
func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
