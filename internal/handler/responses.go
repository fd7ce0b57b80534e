package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// headers are already sent
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err against the operation and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "status", status, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "status", status, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrInvalidSessionID):
		return http.StatusBadRequest, ErrMsgSessionIDError
	case errors.Is(err, domain.ErrInvalidSessionType):
		return http.StatusBadRequest, ErrMsgSessionTypeError
	case errors.Is(err, domain.ErrInvalidDuration):
		return http.StatusBadRequest, ErrMsgDurationError
	case errors.Is(err, domain.ErrConflictingOutcome):
		return http.StatusBadRequest, ErrMsgConflictingOutcomeErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrSessionRolledBack):
		return http.StatusConflict, ErrMsgRolledBackError
	case errors.Is(err, domain.ErrRemoteRejected):
		return http.StatusUnprocessableEntity, ErrMsgRejectedError
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrMalformedResponse):
		return http.StatusBadGateway, ErrMsgBadGatewayError
	case errors.Is(err, domain.ErrUnknownTier):
		return http.StatusBadRequest, ErrMsgUnknownTierError
	case errors.Is(err, domain.ErrUnknownTokenPack):
		return http.StatusBadRequest, ErrMsgUnknownPackError
	case errors.Is(err, domain.ErrTokensExceedPrice):
		return http.StatusBadRequest, ErrMsgTokensExceedPriceErr
	case errors.Is(err, domain.ErrNothingToCharge):
		return http.StatusBadRequest, ErrMsgNothingToChargeError
	case errors.Is(err, domain.ErrPaymentProviderFailed):
		return http.StatusBadGateway, ErrMsgPaymentProviderError
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrMsgUnauthenticated
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
