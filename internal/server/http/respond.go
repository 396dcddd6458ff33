package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/framehq/frame-api/internal/errs"
)

// errorResponse is the error body shared by every endpoint.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("encoding response", zap.Error(err))
		}
	}
}

// writeError maps domain sentinels to HTTP statuses. Unknown errors become an
// opaque 500; the cause is logged, never exposed.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var ve *errs.ValidationError
	switch {
	case errors.As(err, &ve):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "validation_error", Message: ve.Message, Field: ve.Field,
		})
	case errors.Is(err, errs.ErrAlreadyExists):
		// surfaced as 400 for compatibility with existing clients
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "conflict", Message: "email already registered",
		})
	case errors.Is(err, errs.ErrUnauthorized):
		s.writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error: "unauthorized", Message: "invalid authentication credentials",
		})
	case errors.Is(err, errs.ErrRateLimited):
		s.writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error: "rate_limited", Message: "too many failed attempts, try again later",
		})
	case errors.Is(err, errs.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{
			Error: "not_found", Message: "resource not found",
		})
	case errors.Is(err, errs.ErrStorageTimeout):
		s.writeJSON(w, http.StatusGatewayTimeout, errorResponse{
			Error: "storage_timeout", Message: "storage timed out",
		})
	case errors.Is(err, errs.ErrStorageUnavailable):
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: "storage_unavailable", Message: "storage unavailable",
		})
	default:
		s.log.Error("internal error", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "internal_error", Message: "internal error",
		})
	}
}
