package config

import "strings"

// Upstream data sources.
const (
	SourceESPN    = "espn"
	SourceFixture = "fixture"
)

// UpstreamConfig controls how we talk to the ESPN endpoints.
type UpstreamConfig struct {
	// Source selects live ESPN data or the offline fixture set.
	Source      string
	Timeout     Duration
	UserAgent   string
	SiteBaseURL string
	WebBaseURL  string
	CoreBaseURL string
	CDNBaseURL  string
}

func loadUpstream() UpstreamConfig {
	source := strings.ToLower(envOrDefault(envUpstreamSource, SourceESPN))
	if source != SourceFixture {
		source = SourceESPN
	}
	return UpstreamConfig{
		Source:      source,
		Timeout:     durationEnvOrDefault(envUpstreamTimeout, defaultUpstreamTimeout),
		UserAgent:   envOrDefault(envUserAgent, defaultUserAgent),
		SiteBaseURL: envOrDefault(envSiteBaseURL, defaultSiteBaseURL),
		WebBaseURL:  envOrDefault(envWebBaseURL, defaultWebBaseURL),
		CoreBaseURL: envOrDefault(envCoreBaseURL, defaultCoreBaseURL),
		CDNBaseURL:  envOrDefault(envCDNBaseURL, defaultCDNBaseURL),
	}
}
