// Package fixture serves a deterministic ESPN-shaped data set for local development and demos.
package fixture

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/rookie-play-service/internal/providers"
)

//go:embed data/*.json
var files embed.FS

// Fetcher answers upstream URLs from the embedded data set, matching on the path shape.
// Any URL it does not recognize fails with a 404 FetchError, like a missing ESPN resource.
// The play list honors the limit query parameter; other parameters are ignored.
type Fetcher struct {
	files embed.FS
}

var _ providers.Fetcher = (*Fetcher)(nil)

// New creates a fixture fetcher.
func New() *Fetcher {
	return &Fetcher{files: files}
}

// Fetch returns a freshly decoded payload so callers may mutate it.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, params url.Values) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, &providers.FetchError{URL: rawURL, Err: err}
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &providers.FetchError{URL: rawURL, Err: err}
	}
	name, ok := resource(u.Path)
	if !ok {
		return nil, &providers.FetchError{URL: rawURL, StatusCode: http.StatusNotFound, Err: fmt.Errorf("no fixture for %s", u.Path)}
	}

	raw, err := f.files.ReadFile("data/" + name + ".json")
	if err != nil {
		return nil, &providers.FetchError{URL: rawURL, StatusCode: http.StatusNotFound, Err: err}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, &providers.FetchError{URL: rawURL, StatusCode: http.StatusOK, Err: fmt.Errorf("decode fixture %s: %w", name, err)}
	}
	if name == "plays" {
		capItems(out, params.Get("limit"))
	}
	return out, nil
}

// capItems truncates the play list to a positive limit.
func capItems(p map[string]any, raw string) {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return
	}
	if items, ok := p["items"].([]any); ok && len(items) > limit {
		p["items"] = items[:limit]
	}
}

// resource maps an ESPN path to a fixture name. The CDN play-by-play has no fixture,
// so the core play list always serves plays.
func resource(path string) (string, bool) {
	path = strings.TrimSuffix(path, "/")
	switch {
	case strings.HasSuffix(path, "/scoreboard"):
		return "scoreboard", true
	case strings.HasSuffix(path, "/teams"):
		return "teams", true
	case strings.Contains(path, "/teams/"):
		return "team", true
	case strings.HasSuffix(path, "/plays"):
		return "plays", true
	case strings.HasSuffix(path, "/game"):
		return "game", true
	case strings.Contains(path, "/athletes/"):
		return "athlete", true
	}
	return "", false
}
