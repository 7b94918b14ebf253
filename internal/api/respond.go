package api

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/lueurxax/tastelog/internal/core/errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// respondError sends an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// respondStoreError maps record store errors to HTTP statuses.
func respondStoreError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	switch {
	case errors.Is(err, errors.ErrNotFound):
		respondError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, errors.ErrInvalidID),
		errors.Is(err, errors.ErrInvalidInput),
		errors.Is(err, errors.ErrInvalidRating),
		errors.Is(err, errors.ErrUnknownSakeType):
		respondError(w, http.StatusBadRequest, codeValidation, err.Error())
	default:
		logger.Error().Err(err).Msg("record store request failed")
		respondError(w, http.StatusInternalServerError, codeInternal, "Internal server error")
	}
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, codeInvalidBody, "Request body must be valid JSON")

		return false
	}

	return true
}
