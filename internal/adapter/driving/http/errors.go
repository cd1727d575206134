package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/peerwave/signaling/internal/core/domain"
	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Error encoding response")
	}
}

// writeError maps domain errors onto statuses. Unknown errors become a
// 500 carrying the message only.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Room not found"})
	case errors.Is(err, domain.ErrAuthRequired):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("Unhandled error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
