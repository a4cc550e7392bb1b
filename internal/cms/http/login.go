package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/risechangeslives/risecms/internal/cms/service"
	"github.com/risechangeslives/risecms/pkg/httpx"
	"github.com/risechangeslives/risecms/pkg/slogx"
)

// codeValiditySeconds is what the response advertises; it matches the
// registry's code TTL.
const codeValiditySeconds = 600

type LoginHandler struct {
	AuthService *service.AuthService
}

type loginRequest struct {
	Email string `json:"email"`
}

type loginResponse struct {
	Message   string `json:"message"`
	Email     string `json:"email"`
	ExpiresIn int    `json:"expiresIn"`
}

// ServeHTTP handles the first login step: look up the account and email a
// verification code.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email is required")
		return
	}

	email, err := h.AuthService.RequestLogin(ctx, req.Email)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	case errors.Is(err, service.ErrMailDelivery):
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to send verification email")
		return
	default:
		log.Error("login request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Message:   "Verification code sent to your email",
		Email:     email,
		ExpiresIn: codeValiditySeconds,
	})
}
