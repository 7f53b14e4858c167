package handler

import (
	"encoding/json"
	"net/http"

	"pdf-to-text/internal/domain"
	apperrors "pdf-to-text/pkg/errors"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// messageResponse is the body of every error response.
type messageResponse struct {
	Message string `json:"message"`
}

// GetRequestIDFromContext extracts the request id set by RequestIDMiddleware
func GetRequestIDFromContext(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, messageResponse{Message: message})
}

// writeAppError maps err to its status code. Causes are logged, never sent to the client.
func writeAppError(w http.ResponseWriter, r *http.Request, logger domain.Logger, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.NewInternalError("Internal server error", err)
	}

	if appErr.StatusCode >= http.StatusInternalServerError || appErr.Cause != nil {
		logger.Error("Request failed", err,
			"type", appErr.Type,
			"status", appErr.StatusCode,
			"request_id", GetRequestIDFromContext(r),
		)
	} else {
		logger.Debug("Request rejected", "type", appErr.Type, "request_id", GetRequestIDFromContext(r))
	}

	writeError(w, appErr.StatusCode, appErr.Message)
}
