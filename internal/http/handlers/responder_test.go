package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/rookie-play-service/internal/http/middleware"
	"github.com/preston-bernstein/rookie-play-service/internal/providers"
	"github.com/preston-bernstein/rookie-play-service/internal/testutil"
)

func TestWriteErrorIncludesRequestIDFromMiddleware(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	handler := middleware.LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc123")
	rr := testutil.ServeRequest(handler, req)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "boom" || body["requestId"] != "abc123" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestWriteErrorFallsBackToHeaderRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "header-id")
	writeError(rr, req, http.StatusTeapot, "boom", logger)
	if !bytes.Contains(rr.Body.Bytes(), []byte("header-id")) {
		t.Fatalf("expected header request id used when context missing")
	}
}

func TestWriteErrorOmitsMissingRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusBadRequest, "bad", nil)
	if bytes.Contains(rr.Body.Bytes(), []byte("requestId")) {
		t.Fatalf("expected no requestId without one, got %s", rr.Body.String())
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestWriteUpstreamErrorHidesDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	writeUpstreamError(rr, req, errors.New("dial tcp 10.0.0.1:443: connection refused"), nil)

	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	if bytes.Contains(rr.Body.Bytes(), []byte("10.0.0.1")) {
		t.Fatalf("expected upstream detail hidden, got %s", rr.Body.String())
	}
}

func TestLoggerFromContextNilRequest(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	if got := loggerFromContext(nil, logger); got != logger {
		t.Fatalf("expected fallback logger for nil request")
	}
}

func TestWriteJSONDoesNotEscapeHTML(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, map[string]string{"why": "4th & 6 <ok>"}, nil)
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"4th & 6 <ok>"`)) {
		t.Fatalf("expected unescaped text, got %s", rr.Body.String())
	}
}

func TestWriteUpstreamErrorLogsFailureClass(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "fetch",
			err:  fmt.Errorf("list teams: %w", &providers.FetchError{URL: "http://espn.test/teams", StatusCode: http.StatusServiceUnavailable}),
			want: []string{"failure=fetch", "status_code=503"},
		},
		{
			name: "shape",
			err:  fmt.Errorf("list games: %w", &providers.ShapeError{Path: "events", Expected: "list"}),
			want: []string{"failure=shape", "path=events"},
		},
		{
			name: "not found",
			err: &providers.NotFoundError{Resource: "player", ID: "3", Err: &providers.FetchError{
				URL: "http://espn.test/athletes/3", StatusCode: http.StatusNotFound,
			}},
			want: []string{"failure=not_found", "resource=player", "status_code=404"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			rr := httptest.NewRecorder()
			writeUpstreamError(rr, httptest.NewRequest(http.MethodGet, "/api/teams", nil), tc.err, logger)

			testutil.AssertStatus(t, rr, http.StatusBadGateway)
			for _, w := range tc.want {
				if !strings.Contains(buf.String(), w) {
					t.Fatalf("expected %q in log, got %s", w, buf.String())
				}
			}
		})
	}
}
