package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/rookie-play-service/internal/config"
	"github.com/preston-bernstein/rookie-play-service/internal/metrics"
	"github.com/preston-bernstein/rookie-play-service/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := config.Config{Metrics: config.MetricsConfig{Enabled: true}}

	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithMetrics(cfg, logger, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
	if !strings.Contains(buf.String(), "metrics setup failed") {
		t.Fatalf("expected setup failure to be logged, got %q", buf.String())
	}
}

func TestNewServerWithMetricsDisabledSkipsSetup(t *testing.T) {
	cfg := config.Config{Metrics: config.MetricsConfig{Enabled: false}}

	srv := newServerWithMetrics(cfg, nil, nil)
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	defer func() { _ = shutdown(context.Background()) }()

	cfg := config.Config{Metrics: config.MetricsConfig{Enabled: true}}

	srv := newServerWithMetrics(cfg, nil, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no owned metrics shutdown for an injected recorder")
	}
}

func TestBuildMetricsStartsServerWhenEnabled(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	var gotCfg metrics.TelemetryConfig
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		gotCfg = cfg
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	cfg := config.Config{Metrics: config.MetricsConfig{
		Enabled:     true,
		Port:        "9100",
		ServiceName: "rookie-play-service",
	}}

	rec, srv, stop := buildMetrics(cfg, nil, nil)
	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server and shutdown, got %v %v %v", rec, srv, stop != nil)
	}
	if srv.Addr() != ":9100" {
		t.Fatalf("expected metrics addr :9100, got %q", srv.Addr())
	}
	if gotCfg.ServiceName != "rookie-play-service" {
		t.Fatalf("expected service name forwarded, got %q", gotCfg.ServiceName)
	}
}
