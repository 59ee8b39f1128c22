package teams

import (
	"context"
	"fmt"
	"log/slog"

	domainteams "github.com/preston-bernstein/rookie-play-service/internal/domain/teams"
	"github.com/preston-bernstein/rookie-play-service/internal/logging"
	"github.com/preston-bernstein/rookie-play-service/internal/providers"
	"github.com/preston-bernstein/rookie-play-service/internal/providers/espn"
)

// Service reads the team catalog and team detail from upstream.
type Service struct {
	fetcher   providers.Fetcher
	endpoints espn.Endpoints
	logger    *slog.Logger
}

// NewService constructs a Service over the given fetcher.
func NewService(fetcher providers.Fetcher, endpoints espn.Endpoints, logger *slog.Logger) *Service {
	return &Service{fetcher: fetcher, endpoints: endpoints, logger: logger}
}

// ListTeams returns every team in the league catalog. A catalog without the expected nesting is empty.
func (s *Service) ListTeams(ctx context.Context) ([]domainteams.Team, error) {
	data, err := s.fetcher.Fetch(ctx, s.endpoints.Teams(), nil)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "team catalog fetch failed", err)
		return nil, fmt.Errorf("list teams: %w", err)
	}
	items, err := espn.MapTeams(data)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "team catalog payload rejected", err)
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

// GetTeam returns the upstream team detail unchanged.
func (s *Service) GetTeam(ctx context.Context, id string) (map[string]any, error) {
	data, err := s.fetcher.Fetch(ctx, s.endpoints.Team(id), nil)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "team detail fetch failed", err, logging.FieldTeamID, id)
		return nil, fmt.Errorf("get team %s: %w", id, err)
	}
	return data, nil
}
