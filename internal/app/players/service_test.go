package players

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/rookie-play-service/internal/providers"
	"github.com/preston-bernstein/rookie-play-service/internal/providers/espn"
	"github.com/preston-bernstein/rookie-play-service/internal/testutil"
)

func newTestService() (*Service, *testutil.StubFetcher, []string) {
	fetcher := testutil.NewStubFetcher()
	endpoints := espn.NewEndpoints("", "http://web", "http://core", "")
	return NewService(fetcher, endpoints, nil), fetcher, endpoints.PlayerCandidates("42")
}

func TestGetPlayerStopsAtFirstSuccess(t *testing.T) {
	svc, fetcher, candidates := newTestService()
	fetcher.Respond(candidates[0], map[string]any{"source": "overview"})
	fetcher.Respond(candidates[1], map[string]any{"source": "web"})

	got, err := svc.GetPlayer(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got["source"] != "overview" {
		t.Fatalf("expected overview payload, got %+v", got)
	}
	if n := len(fetcher.Calls()); n != 1 {
		t.Fatalf("expected a single fetch, got %d", n)
	}
}

func TestGetPlayerFallsThroughInOrder(t *testing.T) {
	svc, fetcher, candidates := newTestService()
	fetcher.Fail(candidates[0], errors.New("overview down"))
	fetcher.Respond(candidates[2], map[string]any{"source": "core"})

	got, err := svc.GetPlayer(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got["source"] != "core" {
		t.Fatalf("expected core payload, got %+v", got)
	}
	calls := fetcher.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected three attempts, got %d", len(calls))
	}
	for i, c := range calls {
		if c.URL != candidates[i] {
			t.Fatalf("attempt %d hit %s, want %s", i, c.URL, candidates[i])
		}
	}
}

func TestGetPlayerAllFailWrapsLastError(t *testing.T) {
	svc, fetcher, candidates := newTestService()
	last := errors.New("core down")
	fetcher.Fail(candidates[0], errors.New("overview down"))
	fetcher.Fail(candidates[1], errors.New("web down"))
	fetcher.Fail(candidates[2], last)

	_, err := svc.GetPlayer(context.Background(), "42")
	nf, ok := providers.AsNotFoundError(err)
	if !ok {
		t.Fatalf("expected not found error, got %v", err)
	}
	if nf.Resource != "player" || nf.ID != "42" {
		t.Fatalf("unexpected not found error %+v", nf)
	}
	if !errors.Is(err, last) {
		t.Fatalf("expected last error to be wrapped, got %v", err)
	}
}
