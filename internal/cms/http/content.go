package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/risechangeslives/risecms/internal/cms/domain"
	"github.com/risechangeslives/risecms/internal/cms/service"
	"github.com/risechangeslives/risecms/pkg/httpx"
	"github.com/risechangeslives/risecms/pkg/slogx"
)

type ContentHandler struct {
	ContentService *service.ContentService
}

type contentUpdatedResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (h *ContentHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.ContentService.All(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("content read failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, doc)
}

func (h *ContentHandler) HandleGetSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := h.ContentService.Section(ctx, r.PathValue("section"))
	switch {
	case err == nil:
	case errors.Is(err, service.ErrSectionNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Section not found")
		return
	default:
		slogx.FromContext(ctx).Error("content section read failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

func (h *ContentHandler) HandlePutAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var doc domain.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ts, err := h.ContentService.ReplaceAll(ctx, doc)
	if err != nil {
		slogx.FromContext(ctx).Error("content replace failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, contentUpdatedResponse{
		Message:   "Content updated successfully",
		Timestamp: ts.Format(time.RFC3339),
	})
}

func (h *ContentHandler) HandlePutSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	section := r.PathValue("section")

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ts, err := h.ContentService.ReplaceSection(ctx, section, raw)
	if err != nil {
		slogx.FromContext(ctx).Error("content section replace failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, contentUpdatedResponse{
		Message:   section + " section updated successfully",
		Timestamp: ts.Format(time.RFC3339),
	})
}
