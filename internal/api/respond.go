// Package api exposes the REST surface. Mutating endpoints only validate and
// route commands; they answer 202 Accepted because the state transition
// happens later, when a consumer drains the command.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"connected/internal/common"
)

// HttpResponse is the envelope returned for accepted requests and errors.
type HttpResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeAccepted(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusAccepted, HttpResponse{Status: "Accepted", Message: message})
}

// writeError maps the error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, HttpResponse{Status: "Not Found", Message: err.Error()})
	case errors.Is(err, common.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, HttpResponse{Status: "Forbidden", Message: err.Error()})
	case errors.Is(err, common.ErrUnsupportedMedia):
		writeJSON(w, http.StatusUnsupportedMediaType, HttpResponse{Status: "Unsupported Media Type", Message: err.Error()})
	case errors.Is(err, common.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, HttpResponse{Status: "Bad Request", Message: err.Error()})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, HttpResponse{Status: "Internal Server Error", Message: err.Error()})
	}
}
