package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"backoffice/internal/middleware"
	apperrors "backoffice/pkg/errors"
	"backoffice/pkg/logger"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes err as an ErrorResponse. Only the user-facing message
// of an AppError is exposed; anything else becomes a generic internal error.
func respondError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.NewInternalError("An error occurred", err)
	}

	requestID := middleware.GetRequestID(r.Context())
	log.WithError(err).WithField("request_id", requestID).Error("Request error")

	response := &apperrors.ErrorResponse{}
	response.Error.Type = appErr.Type
	response.Error.Message = appErr.Message
	response.Error.Details = appErr.Details
	response.Error.RequestID = requestID
	response.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	respondJSON(w, appErr.StatusCode, response)
}
