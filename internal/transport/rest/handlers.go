package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/elimu-ai/Dooz/internal/entity"
)

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleMatches - serves the latest finished games, newest first. The
// optional limit query parameter caps how many come back.
func (that *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleMatches")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "limit must be a positive number", http.StatusBadRequest)
			return
		}

		limit = parsed
	}

	matches, err := that.matchService.Recent(r.Context(), limit)
	if err != nil {
		log.Error("failed to load matches", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	// an empty archive serializes as a list, not null
	if matches == nil {
		matches = []*entity.Match{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err = json.NewEncoder(w).Encode(matches); err != nil {
		log.Error("failed to encode matches", "error", err)
	}
}
