package providers

import (
	"context"
	"net/url"
)

// Fetcher performs a GET against an upstream URL and returns the decoded JSON object.
// Implementations return *FetchError on transport failures, non-2xx responses and undecodable bodies.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, params url.Values) (map[string]any, error)
}
