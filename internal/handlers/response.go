package handlers

import (
	"net/http"

	"github.com/goccy/go-json"
)

// ErrorResponse is the body of every error reply.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable reason
	// default: User not found
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
