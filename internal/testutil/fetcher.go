package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/preston-bernstein/rookie-play-service/internal/providers"
)

// StubResponse is the canned result for one URL.
type StubResponse struct {
	Payload map[string]any
	Err     error
}

// StubCall records a single Fetch invocation.
type StubCall struct {
	URL    string
	Params url.Values
}

// StubFetcher serves canned payloads keyed by URL. Unknown URLs fail with a 404 FetchError.
type StubFetcher struct {
	mu        sync.Mutex
	responses map[string]StubResponse
	calls     []StubCall
}

var _ providers.Fetcher = (*StubFetcher)(nil)

// NewStubFetcher returns an empty stub.
func NewStubFetcher() *StubFetcher {
	return &StubFetcher{responses: make(map[string]StubResponse)}
}

// Respond registers a payload for rawURL.
func (f *StubFetcher) Respond(rawURL string, payload map[string]any) *StubFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[rawURL] = StubResponse{Payload: payload}
	return f
}

// Fail registers an error for rawURL.
func (f *StubFetcher) Fail(rawURL string, err error) *StubFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[rawURL] = StubResponse{Err: err}
	return f
}

func (f *StubFetcher) Fetch(_ context.Context, rawURL string, params url.Values) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, StubCall{URL: rawURL, Params: params})
	resp, ok := f.responses[rawURL]
	if !ok {
		return nil, &providers.FetchError{URL: rawURL, StatusCode: http.StatusNotFound}
	}
	return resp.Payload, resp.Err
}

// Calls returns a copy of every recorded call in order.
func (f *StubFetcher) Calls() []StubCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]StubCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount reports how many times rawURL was fetched.
func (f *StubFetcher) CallCount(rawURL string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.URL == rawURL {
			n++
		}
	}
	return n
}

// MustPayload decodes a JSON object the way the upstream client does, keeping numbers verbatim.
func MustPayload(t testing.TB, raw string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		t.Fatalf("invalid payload fixture: %v", err)
	}
	return out
}
