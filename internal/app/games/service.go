package games

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	domaingames "github.com/preston-bernstein/rookie-play-service/internal/domain/games"
	"github.com/preston-bernstein/rookie-play-service/internal/logging"
	"github.com/preston-bernstein/rookie-play-service/internal/providers"
	"github.com/preston-bernstein/rookie-play-service/internal/providers/espn"
)

// Service reads games from the upstream scoreboard and game detail endpoints.
type Service struct {
	fetcher   providers.Fetcher
	endpoints espn.Endpoints
	logger    *slog.Logger
}

// NewService constructs a Service over the given fetcher.
func NewService(fetcher providers.Fetcher, endpoints espn.Endpoints, logger *slog.Logger) *Service {
	return &Service{fetcher: fetcher, endpoints: endpoints, logger: logger}
}

// ListGames returns the scoreboard games, optionally for a single YYYYMMDD date.
func (s *Service) ListGames(ctx context.Context, date string) ([]domaingames.Game, error) {
	params := url.Values{}
	if date != "" {
		params.Set("dates", date)
	}

	logger := logging.FromContext(ctx, s.logger)
	data, err := s.fetcher.Fetch(ctx, s.endpoints.Scoreboard(), params)
	if err != nil {
		logging.Error(logger, "scoreboard fetch failed", err, logging.FieldDate, date)
		return nil, fmt.Errorf("list games: %w", err)
	}

	games, err := espn.MapScoreboard(data)
	if err != nil {
		logging.Error(logger, "scoreboard payload rejected", err, logging.FieldDate, date)
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// GetGame returns the upstream game detail unchanged.
func (s *Service) GetGame(ctx context.Context, id string) (map[string]any, error) {
	data, err := s.fetcher.Fetch(ctx, s.endpoints.Game(), espn.GameParams(id))
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "game detail fetch failed", err, logging.FieldGameID, id)
		return nil, fmt.Errorf("get game %s: %w", id, err)
	}
	return data, nil
}
