package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	rs "github.com/Gobd/ruleset"
	"github.com/Gobd/ruleset/internal/user"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// MessageResponse is the body of a successful request without a resource.
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	msgValidationFailed = "validation failed"
	msgMalformedBody    = "malformed request body"
	msgInvalidUserID    = "invalid user id"
	msgInternal         = "internal server error"
)

// WriteError maps err to a status code and an ErrorResponse. Validation
// failures list their violations. Configuration errors, lookup failures and
// unknown errors are logged and answered with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var (
		verr *user.ValidationError
		derr *rs.DecodeError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: msgValidationFailed, Errors: verr.Fields()})
	case errors.As(err, &derr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: msgMalformedBody, Errors: map[string]string{}})
	case errors.Is(err, user.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: err.Error(), Errors: map[string]string{}})
	default:
		fields := []zap.Field{
			zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		}
		switch {
		case errors.Is(err, rs.ErrCollaborator):
			log.Error("uniqueness lookup failed", fields...)
		case errors.Is(err, rs.ErrConfiguration):
			log.Error("rule set misconfigured", fields...)
		default:
			log.Error("request failed", fields...)
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: msgInternal, Errors: map[string]string{}})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
