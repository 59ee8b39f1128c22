package config

import "strings"

// Explanation modes.
const (
	ExplainModeRules = "rules"
	ExplainModeAI    = "ai"
)

// Explanation cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// ExplainConfig controls the play explanation feature and its optional model backend.
type ExplainConfig struct {
	Mode          string
	OpenAIKey     string
	OpenAIBaseURL string
	Model         string
	MaxTokens     int
	Temperature   float64
	CacheBackend  string
	CacheTTL      Duration // zero keeps entries for the process lifetime
	RedisURL      string
}

// AIEnabled reports whether model-backed explanations should be served.
// The ai mode without a credential falls back to rules.
func (c ExplainConfig) AIEnabled() bool {
	return c.Mode == ExplainModeAI && c.OpenAIKey != ""
}

func loadExplain() ExplainConfig {
	mode := strings.ToLower(envOrDefault(envExplainMode, defaultExplainMode))
	if mode != ExplainModeAI {
		mode = ExplainModeRules
	}
	backend := strings.ToLower(envOrDefault(envCacheBackend, defaultCacheBackend))
	if backend != CacheRedis {
		backend = CacheMemory
	}
	return ExplainConfig{
		Mode:          mode,
		OpenAIKey:     envOrDefault(envOpenAIKey, ""),
		OpenAIBaseURL: envOrDefault(envOpenAIBaseURL, ""),
		Model:         envOrDefault(envOpenAIModel, defaultOpenAIModel),
		MaxTokens:     intEnvOrDefault(envMaxTokens, defaultMaxTokens),
		Temperature:   floatEnvOrDefault(envTemperature, defaultTemperature),
		CacheBackend:  backend,
		CacheTTL:      durationEnvOrDefault(envCacheTTL, 0),
		RedisURL:      envOrDefault(envRedisURL, defaultRedisURL),
	}
}
