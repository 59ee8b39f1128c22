package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domainteams "github.com/preston-bernstein/rookie-play-service/internal/domain/teams"
)

// ListTeams returns the league team catalog.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	items, err := h.teams.ListTeams(r.Context())
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, domainteams.NewListResponse(items), h.logger)
}

// GetTeam returns the upstream team detail unchanged.
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	detail, err := h.teams.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, detail, h.logger)
}

// GetPlayer returns the first athlete payload that loads.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	detail, err := h.players.GetPlayer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, detail, h.logger)
}
