package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domaingames "github.com/preston-bernstein/rookie-play-service/internal/domain/games"
	domainplays "github.com/preston-bernstein/rookie-play-service/internal/domain/plays"
)

// ListGames returns the scoreboard, optionally filtered by ?date=.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD or YYYYMMDD)", h.logger)
		return
	}
	items, err := h.games.ListGames(r.Context(), date)
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, domaingames.NewListResponse(items), h.logger)
}

// GetGame returns the upstream game detail unchanged.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	detail, err := h.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, detail, h.logger)
}

// GamePlays returns the play list for a game.
func (h *Handler) GamePlays(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	gameID := chi.URLParam(r, "id")
	items, err := h.plays.GamePlays(r.Context(), gameID, limit)
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, domainplays.NewListResponse(gameID, items), h.logger)
}

// ExplainPlay explains the play named by ?play_id=.
func (h *Handler) ExplainPlay(w http.ResponseWriter, r *http.Request) {
	playID := r.URL.Query().Get("play_id")
	if playID == "" {
		writeError(w, r, http.StatusBadRequest, "missing play_id", h.logger)
		return
	}
	gameID := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, domainplays.ExplainResponse{
		GameID:      gameID,
		PlayID:      playID,
		Explanation: h.plays.ExplainPlay(r.Context(), gameID, playID),
	}, h.logger)
}
