package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error envelope with the given status and message.
func writeError(w http.ResponseWriter, status int, message string, err error, logger zerolog.Logger) {
	resp := model.ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	logger.Error().Err(err).Str("message", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, resp)
}

// writeServiceError maps a service failure to an HTTP status: 404 for a
// missing product, 400 for an empty upload, 500 for everything else
// (including validation failures, which the store rejects).
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeProductNotFound:
			writeError(w, http.StatusNotFound, domainErr.Message, nil, logger)
			return
		case model.ErrCodeNoFileProvided:
			writeError(w, http.StatusBadRequest, domainErr.Message, nil, logger)
			return
		}
	}

	writeError(w, http.StatusInternalServerError, fallback, err, logger)
}
