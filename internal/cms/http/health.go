package http

import (
	"net/http"
	"time"

	"github.com/risechangeslives/risecms/pkg/httpx"
)

type HealthHandler struct {
	Env string
}

type healthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Message     string `json:"message"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, healthResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.Env,
		Message:     "RISE CMS Backend is running!",
	})
}
