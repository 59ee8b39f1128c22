package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/rookie-play-service/internal/app/games"
	"github.com/preston-bernstein/rookie-play-service/internal/app/players"
	"github.com/preston-bernstein/rookie-play-service/internal/app/plays"
	"github.com/preston-bernstein/rookie-play-service/internal/app/teams"
	domainplays "github.com/preston-bernstein/rookie-play-service/internal/domain/plays"
	"github.com/preston-bernstein/rookie-play-service/internal/http/handlers"
	"github.com/preston-bernstein/rookie-play-service/internal/metrics"
	"github.com/preston-bernstein/rookie-play-service/internal/providers/espn"
	"github.com/preston-bernstein/rookie-play-service/internal/testutil"
)

func newTestRouter(t *testing.T, fetcher *testutil.StubFetcher, recorder *metrics.Recorder) http.Handler {
	t.Helper()
	endpoints := espn.NewEndpoints("http://site", "http://web", "http://core", "http://cdn")
	logger, _ := testutil.NewBufferLogger()
	h := handlers.NewHandler(handlers.Deps{
		Games:   games.NewService(fetcher, endpoints, logger),
		Plays:   plays.NewService(fetcher, endpoints, plays.Options{Logger: logger}),
		Teams:   teams.NewService(fetcher, endpoints, logger),
		Players: players.NewService(fetcher, endpoints, logger),
		Logger:  logger,
		Service: "rookie-play-service",
		Version: "test",
	})
	return NewRouter(h, RouterOptions{Logger: logger, Metrics: recorder})
}

func seededFetcher(t *testing.T) *testutil.StubFetcher {
	t.Helper()
	endpoints := espn.NewEndpoints("http://site", "http://web", "http://core", "http://cdn")
	fetcher := testutil.NewStubFetcher()
	fetcher.Respond(endpoints.Scoreboard(), testutil.MustPayload(t, `{"events":[]}`))
	fetcher.Respond(endpoints.Game(), map[string]any{"header": map[string]any{}})
	fetcher.Respond(endpoints.Plays("1"), testutil.MustPayload(t, `{"items":[{"id":"5","text":"Run"}]}`))
	fetcher.Respond(endpoints.Teams(), map[string]any{})
	fetcher.Respond(endpoints.Team("9"), map[string]any{"team": map[string]any{}})
	fetcher.Respond(endpoints.PlayerCandidates("3")[0], map[string]any{"athlete": map[string]any{}})
	return fetcher
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, seededFetcher(t), nil)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api", "", http.StatusOK},
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodGet, "/api/games", "", http.StatusOK},
		{http.MethodGet, "/api/games?date=2025-10-26", "", http.StatusOK},
		{http.MethodGet, "/api/games/1", "", http.StatusOK},
		{http.MethodGet, "/api/games/1/plays", "", http.StatusOK},
		{http.MethodGet, "/api/games/1/explain-play?play_id=5", "", http.StatusOK},
		{http.MethodGet, "/api/teams", "", http.StatusOK},
		{http.MethodGet, "/api/teams/9", "", http.StatusOK},
		{http.MethodGet, "/api/players/3", "", http.StatusOK},
		{http.MethodGet, "/api/users/u1/favorites", "", http.StatusOK},
		{http.MethodPost, "/api/users/u1/favorites", `{"type":"team","id":"9"}`, http.StatusCreated},
		{http.MethodDelete, "/api/users/u1/favorites?type=team&id=9", "", http.StatusOK},
		{http.MethodGet, "/api/users/u1/notes", "", http.StatusOK},
		{http.MethodPost, "/api/users/u1/notes", `{"note":"nice","game_id":"1"}`, http.StatusCreated},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, strings.NewReader(tc.body))
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected %d, got %d (%s)", tc.method, tc.path, tc.want, rr.Code, rr.Body.String())
		}
	}
}

func TestRouterUnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(t, seededFetcher(t), nil)

	for _, path := range []string{"/does-not-exist", "/api/nope"} {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusNotFound)
		var body map[string]string
		testutil.DecodeJSON(t, rr, &body)
		if body["error"] != "not found" || body["requestId"] == "" {
			t.Fatalf("unexpected 404 body %+v", body)
		}
	}
}

func TestRouterWrongMethodReturnsJSON405(t *testing.T) {
	router := newTestRouter(t, seededFetcher(t), nil)

	rr := testutil.Serve(router, http.MethodPost, "/api/games", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "method not allowed" {
		t.Fatalf("unexpected 405 body %+v", body)
	}
}

func TestRouterUpstreamFailureIs502(t *testing.T) {
	fetcher := testutil.NewStubFetcher()
	router := newTestRouter(t, fetcher, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	req.Header.Set("X-Request-ID", "req-1")

	rr := testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "upstream data unavailable" || body["requestId"] != "req-1" {
		t.Fatalf("unexpected 502 body %+v", body)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter(t, seededFetcher(t), nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/games", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rr := testutil.ServeRequest(router, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}

func TestRouterCORSHeaderOnSimpleRequest(t *testing.T) {
	router := newTestRouter(t, seededFetcher(t), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rr := testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header on API response, got %q", got)
	}
}

type panicPlays struct{}

func (panicPlays) GamePlays(context.Context, string, int) ([]any, error) { panic("boom") }

func (panicPlays) ExplainPlay(context.Context, string, string) domainplays.Explanation {
	return domainplays.NotFound()
}

func (panicPlays) AIEnabled() bool { return false }

func TestRouterRecoversFromPanics(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	h := handlers.NewHandler(handlers.Deps{Plays: panicPlays{}, Logger: logger})
	router := NewRouter(h, RouterOptions{Logger: logger})

	rr := testutil.Serve(router, http.MethodGet, "/api/games/1/plays", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}

func TestRouterRecordsRouteMetrics(t *testing.T) {
	recorder, promHandler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("metrics setup failed: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	router := newTestRouter(t, seededFetcher(t), recorder)
	rr := testutil.Serve(router, http.MethodGet, "/api/games/1/plays", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	exposition := testutil.Serve(promHandler, http.MethodGet, "/metrics", nil).Body.String()
	if !strings.Contains(exposition, `path="/api/games/{id}/plays"`) {
		t.Fatalf("expected route pattern label in metrics, got:\n%s", exposition)
	}
}
