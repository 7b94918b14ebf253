package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lueurxax/tastelog/internal/core/domain"
)

type winesResponse struct {
	Wines []domain.Wine `json:"wines"`
}

func (h *Handler) listWines(w http.ResponseWriter, r *http.Request) {
	wines, err := h.store.ListWines(r.Context())
	if err != nil {
		respondStoreError(w, h.logger, err)

		return
	}

	respondJSON(w, http.StatusOK, winesResponse{Wines: wines})
}

func (h *Handler) getWine(w http.ResponseWriter, r *http.Request) {
	wine, err := h.store.GetWine(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, h.logger, err)

		return
	}

	respondJSON(w, http.StatusOK, wine)
}

func (h *Handler) createWine(w http.ResponseWriter, r *http.Request) {
	var req WineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validateRequest(&req); msg != "" {
		respondError(w, http.StatusBadRequest, codeValidation, msg)

		return
	}

	wine := req.toDomain("")
	if err := h.store.CreateWine(r.Context(), &wine); err != nil {
		respondStoreError(w, h.logger, err)

		return
	}

	h.logger.Info().Str(logFieldID, wine.ID).Msg("wine created")
	respondJSON(w, http.StatusCreated, wine)
}

func (h *Handler) updateWine(w http.ResponseWriter, r *http.Request) {
	var req WineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if msg := validateRequest(&req); msg != "" {
		respondError(w, http.StatusBadRequest, codeValidation, msg)

		return
	}

	wine := req.toDomain(chi.URLParam(r, "id"))
	if err := h.store.UpdateWine(r.Context(), &wine); err != nil {
		respondStoreError(w, h.logger, err)

		return
	}

	respondJSON(w, http.StatusOK, wine)
}

func (h *Handler) deleteWine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteWine(r.Context(), id); err != nil {
		respondStoreError(w, h.logger, err)

		return
	}

	h.logger.Info().Str(logFieldID, id).Msg("wine deleted")
	w.WriteHeader(http.StatusNoContent)
}
