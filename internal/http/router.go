package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/rookie-play-service/internal/http/handlers"
	"github.com/preston-bernstein/rookie-play-service/internal/http/middleware"
	"github.com/preston-bernstein/rookie-play-service/internal/metrics"
)

// RouterOptions configures the cross-cutting middleware around the API routes.
type RouterOptions struct {
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	AllowedOrigins []string
}

// NewRouter mounts every API route under /api.
func NewRouter(h *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodDelete, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Info)
		r.Get("/health", h.Health)

		r.Get("/games", h.ListGames)
		r.Get("/games/{id}", h.GetGame)
		r.Get("/games/{id}/plays", h.GamePlays)
		r.Get("/games/{id}/explain-play", h.ExplainPlay)

		r.Get("/teams", h.ListTeams)
		r.Get("/teams/{id}", h.GetTeam)
		r.Get("/players/{id}", h.GetPlayer)

		r.Route("/users/{uid}", func(r chi.Router) {
			r.Get("/favorites", h.ListFavorites)
			r.Post("/favorites", h.AddFavorite)
			r.Delete("/favorites", h.RemoveFavorite)
			r.Get("/notes", h.ListNotes)
			r.Post("/notes", h.AddNote)
		})
	})
	return r
}
