package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Favorites and notes are accepted and echoed back but not stored.

const maxBodyBytes = 1 << 16

type favorite struct {
	Type string `json:"type" validate:"required"`
	ID   string `json:"id" validate:"required"`
}

func (f *favorite) trim() {
	f.Type = strings.TrimSpace(f.Type)
	f.ID = strings.TrimSpace(f.ID)
}

type noteRequest struct {
	Note   string `json:"note" validate:"required"`
	GameID string `json:"game_id"`
	PlayID string `json:"play_id,omitempty"`
}

type note struct {
	ID     string `json:"id"`
	Note   string `json:"note"`
	GameID string `json:"game_id"`
	PlayID string `json:"play_id,omitempty"`
}

// ListFavorites returns the user's favorites, which are always empty.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":   chi.URLParam(r, "uid"),
		"favorites": []favorite{},
	}, h.logger)
}

// AddFavorite validates and echoes a {type, id} favorite.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var fav favorite
	if err := decodeBody(w, r, &fav); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	fav.trim()
	if err := h.validate.StructCtx(r.Context(), fav); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err), h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"user_id":  chi.URLParam(r, "uid"),
		"favorite": fav,
	}, h.logger)
}

// RemoveFavorite validates a {type, id} favorite read from the body or the query string.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	var fav favorite
	if err := decodeBody(w, r, &fav); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	q := r.URL.Query()
	if fav.Type == "" {
		fav.Type = q.Get("type")
	}
	if fav.ID == "" {
		fav.ID = q.Get("id")
	}
	fav.trim()
	if err := h.validate.StructCtx(r.Context(), fav); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": chi.URLParam(r, "uid"),
		"removed": fav,
	}, h.logger)
}

// ListNotes returns the user's notes, which are always empty.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": chi.URLParam(r, "uid"),
		"notes":   []note{},
	}, h.logger)
}

// AddNote validates a note and echoes it with a generated id.
func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}
	req.Note = strings.TrimSpace(req.Note)
	if err := h.validate.StructCtx(r.Context(), req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err), h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"user_id": chi.URLParam(r, "uid"),
		"note": note{
			ID:     h.newID(),
			Note:   req.Note,
			GameID: req.GameID,
			PlayID: req.PlayID,
		},
	}, h.logger)
}

// decodeBody reads a JSON object into dst. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	if len(fields) == 1 {
		return "missing required field: " + fields[0]
	}
	return "missing required fields: " + strings.Join(fields, ", ")
}
