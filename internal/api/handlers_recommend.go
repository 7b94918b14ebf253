package api

import (
	"net/http"

	"github.com/lueurxax/tastelog/internal/core/domain"
)

type recommendationsResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// getRecommendations always answers 200; generation failures surface as an empty list.
func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	recs := h.engine.Generate(r.Context())
	if recs == nil {
		recs = []domain.Recommendation{}
	}

	respondJSON(w, http.StatusOK, recommendationsResponse{Recommendations: recs})
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	profile, err := h.engine.Preferences(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to build preference profile")
		respondError(w, http.StatusServiceUnavailable, codeUnavailable, "Tasting records are unavailable")

		return
	}

	respondJSON(w, http.StatusOK, profile)
}
