package handlers

import (
	"context"
	"net/http"
	"time"

	"weddingsite/internal/service"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Database: "ok"}

	if h.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.Health.HealthCheck(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = "unavailable"
			WriteSuccess(w, resp, http.StatusServiceUnavailable)
			return
		}
	}

	WriteSuccess(w, resp, http.StatusOK)
}

// PublicConfig exposes the client IDs the invitation page needs for map and share widgets.
func (h *Handlers) PublicConfig(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.Cfg.PublicClient, http.StatusOK)
}

func (h *Handlers) GetInvitation(w http.ResponseWriter, r *http.Request) {
	invitation, err := h.InvitationService.Get(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, invitation, http.StatusOK)
}

func (h *Handlers) UpdateInvitation(w http.ResponseWriter, r *http.Request) {
	var req service.InvitationInput
	if !decodeJSON(w, r, &req) {
		return
	}

	invitation, err := h.InvitationService.Update(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, invitation, http.StatusOK)
}
