package players

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/rookie-play-service/internal/logging"
	"github.com/preston-bernstein/rookie-play-service/internal/providers"
	"github.com/preston-bernstein/rookie-play-service/internal/providers/espn"
)

// Service looks players up across the athlete endpoints.
type Service struct {
	fetcher   providers.Fetcher
	endpoints espn.Endpoints
	logger    *slog.Logger
}

// NewService constructs a Service over the given fetcher.
func NewService(fetcher providers.Fetcher, endpoints espn.Endpoints, logger *slog.Logger) *Service {
	return &Service{fetcher: fetcher, endpoints: endpoints, logger: logger}
}

// GetPlayer returns the first athlete payload that loads, trying candidates in order.
// When every candidate fails the result is a NotFoundError wrapping the last failure.
func (s *Service) GetPlayer(ctx context.Context, id string) (map[string]any, error) {
	logger := logging.FromContext(ctx, s.logger)

	var lastErr error
	for _, candidate := range s.endpoints.PlayerCandidates(id) {
		data, err := s.fetcher.Fetch(ctx, candidate, nil)
		if err == nil {
			return data, nil
		}
		lastErr = err
		logging.Warn(logger, "player candidate failed", logging.FieldPlayerID, id, logging.FieldURL, candidate)
	}

	err := &providers.NotFoundError{Resource: "player", ID: id, Err: lastErr}
	logging.Error(logger, "player lookup exhausted", err, logging.FieldPlayerID, id)
	return nil, err
}
