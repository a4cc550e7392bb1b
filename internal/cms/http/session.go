package http

import (
	"errors"
	"net/http"

	"github.com/risechangeslives/risecms/internal/cms/service"
	"github.com/risechangeslives/risecms/pkg/httpx"
	"github.com/risechangeslives/risecms/pkg/slogx"
)

type SessionHandler struct {
	UserService *service.UserService
}

type messageResponse struct {
	Message string `json:"message"`
}

// HandleMe returns the account behind the presented token. The record is
// re-read so deletions and edits since the token was minted show up.
func (h *SessionHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.UserService.GetUser(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		slogx.FromContext(ctx).Error("session lookup failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, user)
}

// HandleLogout acknowledges the logout. Tokens are stateless, so the
// client discarding its copy is the whole operation.
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
