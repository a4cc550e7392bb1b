package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	"github.com/risechangeslives/risecms/internal/cms/service"
	"github.com/risechangeslives/risecms/pkg/httpx"
	"github.com/risechangeslives/risecms/pkg/slogx"
)

type VerifyHandler struct {
	AuthService *service.AuthService
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type verifyResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

// ServeHTTP handles the second login step: exchange the emailed code for a
// session token.
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Code == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email and verification code are required")
		return
	}

	token, user, err := h.AuthService.CompleteLogin(ctx, req.Email, req.Code)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrNoCode):
		httpx.WriteError(w, http.StatusUnauthorized, "No verification code found or code expired")
		return
	case errors.Is(err, service.ErrCodeExpired):
		httpx.WriteError(w, http.StatusUnauthorized, "Verification code expired")
		return
	case errors.Is(err, service.ErrTooManyAttempts):
		httpx.WriteError(w, http.StatusUnauthorized, "Too many failed attempts")
		return
	case errors.Is(err, service.ErrCodeMismatch):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid verification code")
		return
	case errors.Is(err, service.ErrUserDeactivated):
		httpx.WriteError(w, http.StatusUnauthorized, "User not found or deactivated")
		return
	default:
		log.Error("verification failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, verifyResponse{Token: token, User: user})
}
