package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domaingames "github.com/preston-bernstein/rookie-play-service/internal/domain/games"
	domainplays "github.com/preston-bernstein/rookie-play-service/internal/domain/plays"
	domainteams "github.com/preston-bernstein/rookie-play-service/internal/domain/teams"
)

const infoMessage = "Hello, World!"

// GamesService is the game operations the API needs.
type GamesService interface {
	ListGames(ctx context.Context, date string) ([]domaingames.Game, error)
	GetGame(ctx context.Context, id string) (map[string]any, error)
}

// PlaysService is the play operations the API needs.
type PlaysService interface {
	GamePlays(ctx context.Context, gameID string, limit int) ([]any, error)
	ExplainPlay(ctx context.Context, gameID, playID string) domainplays.Explanation
	AIEnabled() bool
}

// TeamsService is the team operations the API needs.
type TeamsService interface {
	ListTeams(ctx context.Context) ([]domainteams.Team, error)
	GetTeam(ctx context.Context, id string) (map[string]any, error)
}

// PlayersService is the player operations the API needs.
type PlayersService interface {
	GetPlayer(ctx context.Context, id string) (map[string]any, error)
}

// Deps groups the services and metadata a Handler serves.
type Deps struct {
	Games   GamesService
	Plays   PlaysService
	Teams   TeamsService
	Players PlayersService
	Logger  *slog.Logger
	Service string
	Version string
}

// Handler wires HTTP routes to the domain services.
type Handler struct {
	games    GamesService
	plays    PlaysService
	teams    TeamsService
	players  PlayersService
	logger   *slog.Logger
	service  string
	version  string
	validate *validator.Validate
	newID    func() string
}

// NewHandler constructs a Handler with defaults.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		games:    deps.Games,
		plays:    deps.Plays,
		teams:    deps.Teams,
		players:  deps.Players,
		logger:   deps.Logger,
		service:  deps.Service,
		version:  deps.Version,
		validate: newValidator(),
		newID:    uuid.NewString,
	}
}

// newValidator reports field errors by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Info describes the service.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	mode := "rules"
	if h.plays != nil && h.plays.AIEnabled() {
		mode = "ai"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":      infoMessage,
		"service":      h.service,
		"version":      h.version,
		"explain_mode": mode,
	}, h.logger)
}

// Health reports liveness, failing once the request context is cancelled during shutdown.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// NotFound is the JSON 404 for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed is the JSON 405 for known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
