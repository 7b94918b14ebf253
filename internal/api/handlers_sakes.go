package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lueurxax/tastelog/internal/core/domain"
)

type sakesResponse struct {
	Sakes []domain.Sake `json:"sakes"`
}

func (h *Handler) listSakes(w http.ResponseWriter, r *http.Request) {
	sakes, err := h.store.ListSakes(r.Context())
	if err != nil {
		respondStoreError(w, h.logger, err)

		return
	}

	respondJSON(w, http.StatusOK, sakesResponse{Sakes: sakes})
}

func (h *Handler) getSake(w http.ResponseWriter, r *http.Request) {
	sake, err := h.store.GetSake(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, h.logger, err)

		return
	}

	respondJSON(w, http.StatusOK, sake)
}

func (h *Handler) createSake(w http.ResponseWriter, r *http.Request) {
	var req SakeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validateRequest(&req); msg != "" {
		respondError(w, http.StatusBadRequest, codeValidation, msg)

		return
	}

	sake := req.toDomain("")
	if err := h.store.CreateSake(r.Context(), &sake); err != nil {
		respondStoreError(w, h.logger, err)

		return
	}

	h.logger.Info().Str(logFieldID, sake.ID).Msg("sake created")
	respondJSON(w, http.StatusCreated, sake)
}

func (h *Handler) updateSake(w http.ResponseWriter, r *http.Request) {
	var req SakeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validateRequest(&req); msg != "" {
		respondError(w, http.StatusBadRequest, codeValidation, msg)

		return
	}

	sake := req.toDomain(chi.URLParam(r, "id"))
	if err := h.store.UpdateSake(r.Context(), &sake); err != nil {
		respondStoreError(w, h.logger, err)

		return
	}

	respondJSON(w, http.StatusOK, sake)
}

func (h *Handler) deleteSake(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteSake(r.Context(), id); err != nil {
		respondStoreError(w, h.logger, err)

		return
	}

	h.logger.Info().Str(logFieldID, id).Msg("sake deleted")
	w.WriteHeader(http.StatusNoContent)
}
