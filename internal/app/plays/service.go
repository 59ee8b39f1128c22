// Package plays lists a game's plays and explains single plays for new fans.
package plays

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	domainplays "github.com/preston-bernstein/rookie-play-service/internal/domain/plays"
	"github.com/preston-bernstein/rookie-play-service/internal/logging"
	"github.com/preston-bernstein/rookie-play-service/internal/metrics"
	"github.com/preston-bernstein/rookie-play-service/internal/providers"
	"github.com/preston-bernstein/rookie-play-service/internal/providers/espn"
	"github.com/preston-bernstein/rookie-play-service/internal/store"
)

const (
	// DefaultLimit is the play count requested when the caller gives none.
	DefaultLimit = 300
	// explainLimit is how many plays are scanned when locating a single play.
	explainLimit = 500
)

// ExplanationCache stores generated explanation text by play id.
type ExplanationCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// Narrator produces free text for a prompt.
type Narrator interface {
	Narrate(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Options carries the optional collaborators of a Service.
type Options struct {
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	// Cache defaults to an in-process map.
	Cache ExplanationCache
	// Narrator switches explanations to the ai variant when set.
	Narrator Narrator
}

// Service reads play-by-play data and builds explanations.
type Service struct {
	fetcher   providers.Fetcher
	endpoints espn.Endpoints
	logger    *slog.Logger
	metrics   *metrics.Recorder
	cache     ExplanationCache
	narrator  Narrator
	flights   singleflight.Group
}

// NewService constructs a Service. Without a narrator explanations use the rule-based alternatives.
func NewService(fetcher providers.Fetcher, endpoints espn.Endpoints, opts Options) *Service {
	cache := opts.Cache
	if cache == nil {
		cache = store.NewMemoryCache()
	}
	return &Service{
		fetcher:   fetcher,
		endpoints: endpoints,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		cache:     cache,
		narrator:  opts.Narrator,
	}
}

// AIEnabled reports whether explanations carry narrator text.
func (s *Service) AIEnabled() bool {
	return s.narrator != nil
}

// GamePlays returns up to limit plays for a game, falling back to the CDN play-by-play feed
// when the primary feed fails for any reason.
func (s *Service) GamePlays(ctx context.Context, gameID string, limit int) ([]any, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	logger := logging.FromContext(ctx, s.logger)

	data, err := s.fetcher.Fetch(ctx, s.endpoints.Plays(gameID), espn.LimitParams(limit))
	if err == nil {
		return espn.ExtractPlays(data), nil
	}
	logging.Warn(logger, "primary play feed failed, using cdn", logging.FieldGameID, gameID, "error", err)

	data, err = s.fetcher.Fetch(ctx, s.endpoints.PlayByPlay(), espn.GameParams(gameID))
	if err != nil {
		logging.Error(logger, "cdn play feed failed", err, logging.FieldGameID, gameID)
		return nil, fmt.Errorf("game plays %s: %w", gameID, err)
	}
	return espn.ExtractCDNPlays(data), nil
}

// ExplainPlay describes one play. A play that cannot be fetched or found yields the not-found explanation.
func (s *Service) ExplainPlay(ctx context.Context, gameID, playID string) domainplays.Explanation {
	logger := logging.FromContext(ctx, s.logger)

	data, err := s.fetcher.Fetch(ctx, s.endpoints.Plays(gameID), espn.LimitParams(explainLimit))
	if err != nil {
		logging.Warn(logger, "play lookup fetch failed", logging.FieldGameID, gameID, logging.FieldPlayID, playID, "error", err)
		return domainplays.NotFound()
	}
	play, ok := espn.FindPlay(espn.ExtractPlays(data), playID)
	if !ok {
		logging.Info(logger, "play not found", logging.FieldGameID, gameID, logging.FieldPlayID, playID)
		return domainplays.NotFound()
	}

	explanation, sit := describe(play)
	if s.narrator == nil {
		explanation.Variant = domainplays.VariantRules
		explanation.PossibleAlternatives = sit.alternatives()
		return explanation
	}

	explanation.Variant = domainplays.VariantAI
	text, err := s.narration(ctx, playID, sit)
	if err != nil {
		logging.Warn(logger, "play narration failed", logging.FieldPlayID, playID, "error", err)
		return explanation
	}
	explanation.AIExplanation = text
	return explanation
}

// narration returns cached text for the play or asks the narrator once, sharing the call
// between concurrent requests for the same play.
func (s *Service) narration(ctx context.Context, playID string, sit situation) (string, error) {
	if text, ok := s.cached(ctx, playID); ok {
		s.metrics.RecordExplanationCache(true)
		return text, nil
	}
	s.metrics.RecordExplanationCache(false)

	// The flight outlives whichever request started it; the narrator's own timeout bounds it.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := s.flights.Do(playID, func() (any, error) {
		if text, ok := s.cached(flightCtx, playID); ok {
			return text, nil
		}
		start := time.Now()
		text, err := s.narrator.Narrate(flightCtx, buildPrompt(sit))
		s.metrics.RecordModelCall(s.narrator.Model(), time.Since(start), err)
		if err != nil {
			return "", err
		}
		if err := s.cache.Put(flightCtx, playID, text); err != nil {
			logging.Warn(logging.FromContext(flightCtx, s.logger), "explanation cache write failed", logging.FieldPlayID, playID, "error", err)
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *Service) cached(ctx context.Context, playID string) (string, bool) {
	text, ok, err := s.cache.Get(ctx, playID)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "explanation cache read failed", logging.FieldPlayID, playID, "error", err)
		return "", false
	}
	return text, ok
}
