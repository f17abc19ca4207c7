package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"condoreserve-backend/internal/domain"
	"condoreserve-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response body", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps the engine's error taxonomy onto HTTP statuses.
// Every rejected operation carries its precise reason so clients can
// render the message as-is.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrAdminOnly):
		writeJSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrSettingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrIllegalTransition), errors.Is(err, domain.ErrNotPending):
		writeJSONError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("Unhandled error", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}
