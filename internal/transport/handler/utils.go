package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSONError(w http.ResponseWriter, code int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(APIError{
		Error:   message,
		Details: details,
	})
}

// writeBodyError maps request-body decode failures: an oversized body
// becomes a dedicated 413 payload, everything else is a client error.
func writeBodyError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "Request too large", "request body exceeds maximum allowed size")
		return
	}

	writeJSONError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error(), "")
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(body)
}
