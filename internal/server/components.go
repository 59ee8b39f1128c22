package server

import (
	"context"
	"io"
	"log/slog"

	"github.com/preston-bernstein/rookie-play-service/internal/app/plays"
	"github.com/preston-bernstein/rookie-play-service/internal/config"
	"github.com/preston-bernstein/rookie-play-service/internal/metrics"
	"github.com/preston-bernstein/rookie-play-service/internal/narrator"
	"github.com/preston-bernstein/rookie-play-service/internal/providers"
	"github.com/preston-bernstein/rookie-play-service/internal/providers/espn"
	"github.com/preston-bernstein/rookie-play-service/internal/providers/fixture"
	"github.com/preston-bernstein/rookie-play-service/internal/store"
)

var dialRedisCache = store.DialRedisCache

// components are the collaborators shared by the services.
type components struct {
	fetcher   providers.Fetcher
	endpoints espn.Endpoints
	cache     plays.ExplanationCache
	narrator  plays.Narrator
	closers   []io.Closer
}

func buildComponents(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) components {
	c := components{
		fetcher: buildFetcher(cfg.Upstream, logger, recorder),
		endpoints: espn.NewEndpoints(
			cfg.Upstream.SiteBaseURL,
			cfg.Upstream.WebBaseURL,
			cfg.Upstream.CoreBaseURL,
			cfg.Upstream.CDNBaseURL,
		),
		narrator: buildNarrator(cfg.Explain, logger),
	}

	cache, closer := buildCache(cfg.Explain, logger)
	c.cache = cache
	if closer != nil {
		c.closers = append(c.closers, closer)
	}
	return c
}

func buildFetcher(cfg config.UpstreamConfig, logger *slog.Logger, recorder *metrics.Recorder) providers.Fetcher {
	if cfg.Source == config.SourceFixture {
		if logger != nil {
			logger.Info("serving fixture data instead of ESPN")
		}
		return fixture.New()
	}
	return espn.NewClient(espn.Config{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Logger:    logger,
		Metrics:   recorder,
	})
}

// buildCache returns the configured explanation cache. Redis failures fall back to memory.
func buildCache(cfg config.ExplainConfig, logger *slog.Logger) (plays.ExplanationCache, io.Closer) {
	if cfg.CacheBackend != config.CacheRedis {
		return store.NewMemoryCache(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()

	cache, err := dialRedisCache(ctx, cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		if logger != nil {
			logger.Warn("redis explanation cache unavailable, using memory", "error", err)
		}
		return store.NewMemoryCache(), nil
	}
	if logger != nil {
		logger.Info("explanation cache backed by redis", slog.Duration("ttl", cfg.CacheTTL))
	}
	return cache, cache
}

// buildNarrator returns nil unless ai explanations are enabled and the client can be built.
func buildNarrator(cfg config.ExplainConfig, logger *slog.Logger) plays.Narrator {
	if cfg.Mode == config.ExplainModeAI && !cfg.AIEnabled() {
		if logger != nil {
			logger.Warn("ai explanations requested without OPENAI_API_KEY, using rules")
		}
		return nil
	}
	if !cfg.AIEnabled() {
		return nil
	}

	n, err := narrator.NewOpenAI(narrator.Config{
		APIKey:      cfg.OpenAIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("narrator setup failed, using rules", "error", err)
		}
		return nil
	}
	if logger != nil {
		logger.Info("ai explanations enabled", slog.String("model", n.Model()))
	}
	return n
}
