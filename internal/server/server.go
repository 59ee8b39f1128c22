package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/rookie-play-service/internal/app/games"
	"github.com/preston-bernstein/rookie-play-service/internal/app/players"
	"github.com/preston-bernstein/rookie-play-service/internal/app/plays"
	"github.com/preston-bernstein/rookie-play-service/internal/app/teams"
	"github.com/preston-bernstein/rookie-play-service/internal/config"
	httpserver "github.com/preston-bernstein/rookie-play-service/internal/http"
	"github.com/preston-bernstein/rookie-play-service/internal/http/handlers"
	"github.com/preston-bernstein/rookie-play-service/internal/logging"
	"github.com/preston-bernstein/rookie-play-service/internal/metrics"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	closers       []io.Closer
}

// New constructs a server wired to ESPN and the configured explanation backends.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	comps := buildComponents(cfg, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		httpServer:    buildHTTPServer(cfg, comps, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		closers:       comps.closers,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, closers ...io.Closer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		closers:    closers,
	}
}

func buildHTTPServer(cfg config.Config, comps components, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(handlers.Deps{
		Games: games.NewService(comps.fetcher, comps.endpoints, logger),
		Plays: plays.NewService(comps.fetcher, comps.endpoints, plays.Options{
			Logger:   logger,
			Metrics:  recorder,
			Cache:    comps.cache,
			Narrator: comps.narrator,
		}),
		Teams:   teams.NewService(comps.fetcher, comps.endpoints, logger),
		Players: players.NewService(comps.fetcher, comps.endpoints, logger),
		Logger:  logger,
		Service: cfg.Metrics.ServiceName,
		Version: cfg.Version,
	})
	router := httpserver.NewRouter(handler, httpserver.RouterOptions{
		Logger:         logger,
		Metrics:        recorder,
		AllowedOrigins: cfg.CORSOrigins,
	})
	return newNetHTTPServer(":"+cfg.Port, router)
}

// Run starts the listeners, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Closers run after the listener drains so in-flight explains can still reach the cache.
	for _, c := range s.closers {
		if err := c.Close(); err != nil && s.logger != nil {
			s.logger.Warn("close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(":"+recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
