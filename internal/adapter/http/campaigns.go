package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"comparee/internal/core/domain"
)

func (h *Handler) handleCampaignDecision(approve bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			h.fail(w, http.StatusBadRequest, "invalid campaign id", "")
			return
		}

		var c *domain.Campaign
		if approve {
			c, err = h.svc.Campaigns.Approve(r.Context(), id)
		} else {
			c, err = h.svc.Campaigns.Reject(r.Context(), id)
		}
		if err != nil {
			h.failErr(w, r, "campaign decision", err)
			return
		}
		h.ok(w, http.StatusOK, c)
	}
}

type sweepResponse struct {
	Paused []domain.PausedCampaign `json:"paused"`
	Count  int                     `json:"count"`
}

// handleSweep runs the budget enforcement sweep on demand.
func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	paused, err := h.svc.Campaigns.EnforceBudgets(r.Context())
	if err != nil {
		h.failErr(w, r, "budget sweep", err)
		return
	}
	if paused == nil {
		paused = []domain.PausedCampaign{}
	}
	h.ok(w, http.StatusOK, sweepResponse{Paused: paused, Count: len(paused)})
}
