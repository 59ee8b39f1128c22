package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// play explanations, mirroring them to OpenTelemetry when configured.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*upstreamStats
	cacheHits   int
	cacheMisses int
	modelCalls  int
	modelErrors int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*upstreamStats),
		otel:  otel,
	}
}

// RecordUpstreamFetch increments counters for an upstream call and stores the last observed latency.
func (r *Recorder) RecordUpstreamFetch(upstream string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[upstream]
	if !ok {
		stats = &upstreamStats{}
		r.stats[upstream] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamFetch(upstream, duration, err)
	}
}

// RecordExplanationCache tracks whether an AI explanation was served from cache.
func (r *Recorder) RecordExplanationCache(hit bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if hit {
		r.cacheHits++
	} else {
		r.cacheMisses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCache(hit)
	}
}

// RecordModelCall tracks a language-model completion call.
func (r *Recorder) RecordModelCall(model string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.modelCalls++
	if err != nil {
		r.modelErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordModelCall(model, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a point-in-time copy of the in-memory counters.
type Snapshot struct {
	UpstreamCalls   int
	UpstreamErrors  int
	LastCallLatency time.Duration
	CacheHits       int
	CacheMisses     int
	ModelCalls      int
	ModelErrors     int
}

// Snapshot returns the upstream stats for the given upstream plus the explanation counters.
func (r *Recorder) Snapshot(upstream string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		CacheHits:   r.cacheHits,
		CacheMisses: r.cacheMisses,
		ModelCalls:  r.modelCalls,
		ModelErrors: r.modelErrors,
	}
	if stats, ok := r.stats[upstream]; ok && stats != nil {
		snap.UpstreamCalls = stats.calls
		snap.UpstreamErrors = stats.errors
		snap.LastCallLatency = stats.lastCallLatency
	}
	return snap
}

// UpstreamCalls returns the total attempts recorded for an upstream host.
func (r *Recorder) UpstreamCalls(upstream string) int {
	return r.Snapshot(upstream).UpstreamCalls
}

// UpstreamErrors returns the failed attempts recorded for an upstream host.
func (r *Recorder) UpstreamErrors(upstream string) int {
	return r.Snapshot(upstream).UpstreamErrors
}
