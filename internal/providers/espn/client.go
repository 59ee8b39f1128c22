package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/rookie-play-service/internal/logging"
	"github.com/preston-bernstein/rookie-play-service/internal/metrics"
	"github.com/preston-bernstein/rookie-play-service/internal/providers"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client issues GET requests against ESPN endpoints and decodes the JSON body.
type Client struct {
	httpClient httpDoer
	userAgent  string
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

var _ providers.Fetcher = (*Client)(nil)

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		userAgent:  ua,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
}

// Fetch performs a single GET with the given query parameters. It does not retry.
func (c *Client) Fetch(ctx context.Context, rawURL string, params url.Values) (map[string]any, error) {
	req, err := c.buildRequest(ctx, rawURL, params)
	if err != nil {
		return nil, c.fail(ctx, &providers.FetchError{URL: rawURL, Err: err}, "", 0)
	}
	upstream := req.URL.Host
	target := req.URL.String()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(ctx, &providers.FetchError{URL: target, Err: err}, upstream, time.Since(start))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, c.fail(ctx, &providers.FetchError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}, upstream, time.Since(start))
	}

	var payload map[string]any
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, c.fail(ctx, &providers.FetchError{URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode body: %w", err)}, upstream, time.Since(start))
	}
	if payload == nil {
		payload = map[string]any{}
	}

	c.metrics.RecordUpstreamFetch(upstream, time.Since(start), nil)
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, rawURL string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	if len(params) > 0 {
		q := req.URL.Query()
		for key, values := range params {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) fail(ctx context.Context, err *providers.FetchError, upstream string, elapsed time.Duration) error {
	if upstream != "" {
		c.metrics.RecordUpstreamFetch(upstream, elapsed, err)
	}
	logging.Warn(logging.FromContext(ctx, c.logger), "upstream fetch failed",
		slog.String(logging.FieldURL, err.URL),
		slog.Int(logging.FieldStatusCode, err.StatusCode),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		"error", err.Err,
	)
	return err
}
