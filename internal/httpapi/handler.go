// Package httpapi exposes the user service over HTTP.
package httpapi

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Gobd/ruleset/internal/user"
)

// UserService is the part of user.Service the handlers use.
type UserService interface {
	RegisterJSON(ctx context.Context, body io.Reader) (*user.User, error)
	GetUserData(ctx context.Context, id uint) (user.UserData, error)
	UpdateProfile(ctx context.Context, data user.UserData, newPhone string) (string, error)
	ValidateVipJSON(ctx context.Context, body io.Reader) (string, error)
}

// Handler serves the user endpoints.
type Handler struct {
	users UserService
	log   *zap.Logger
}

// NewHandler returns a Handler.
func NewHandler(users UserService, log *zap.Logger) *Handler {
	return &Handler{users: users, log: log}
}

// Register handles POST /api/users/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.RegisterJSON(r.Context(), r.Body)
	if err != nil {
		WriteError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, user.ToResponse(u))
}

// UpdateProfile handles PUT /api/users/{userId}/profile?newPhone=.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "userId"), 10, 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: msgInvalidUserID, Errors: map[string]string{}})
		return
	}

	data, err := h.users.GetUserData(r.Context(), uint(id))
	if err != nil {
		WriteError(w, r, h.log, err)
		return
	}

	msg, err := h.users.UpdateProfile(r.Context(), data, r.URL.Query().Get("newPhone"))
	if err != nil {
		WriteError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// ValidateVip handles POST /api/users/vip/validate.
func (h *Handler) ValidateVip(w http.ResponseWriter, r *http.Request) {
	msg, err := h.users.ValidateVipJSON(r.Context(), r.Body)
	if err != nil {
		WriteError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
}
