package config

import "strings"

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
	Upstream    UpstreamConfig
	Explain     ExplainConfig
	Metrics     MetricsConfig
	// Version is set by the binary, not the environment.
	Version string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		LogLevel:    envOrDefault(envLogLevel, ""),
		LogFormat:   envOrDefault(envLogFormat, ""),
		CORSOrigins: splitList(envOrDefault(envCORSOrigins, defaultCORSOrigins)),
		Upstream:    loadUpstream(),
		Explain:     loadExplain(),
		Metrics:     loadMetrics(),
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
