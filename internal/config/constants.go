package config

import "time"

const (
	envPort            = "PORT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envUpstreamSource  = "UPSTREAM_SOURCE"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envUserAgent       = "UPSTREAM_USER_AGENT"
	envSiteBaseURL     = "ESPN_SITE_BASE_URL"
	envWebBaseURL      = "ESPN_WEB_BASE_URL"
	envCoreBaseURL     = "ESPN_CORE_BASE_URL"
	envCDNBaseURL      = "ESPN_CDN_BASE_URL"
	envExplainMode     = "EXPLAIN_MODE"
	envOpenAIKey       = "OPENAI_API_KEY"
	envOpenAIBaseURL   = "OPENAI_BASE_URL"
	envOpenAIModel     = "OPENAI_MODEL"
	envMaxTokens       = "EXPLAIN_MAX_TOKENS"
	envTemperature     = "EXPLAIN_TEMPERATURE"
	envCacheBackend    = "EXPLAIN_CACHE"
	envCacheTTL        = "EXPLAIN_CACHE_TTL"
	envRedisURL        = "REDIS_URL"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "3000"
	defaultCORSOrigins = "*"
	// The upstream provider is slow on cold caches; 8s keeps the client responsive.
	defaultUpstreamTimeout = 8 * Duration(time.Second)
	defaultUserAgent       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"
	defaultSiteBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"
	defaultWebBaseURL      = "https://site.web.api.espn.com/apis/common/v3/sports/football/nfl"
	defaultCoreBaseURL     = "https://sports.core.api.espn.com/v2/sports/football/leagues/nfl"
	defaultCDNBaseURL      = "https://cdn.espn.com/core/nfl"
	defaultExplainMode     = ExplainModeRules
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultMaxTokens       = 250
	defaultTemperature     = 0.7
	defaultCacheBackend    = CacheMemory
	defaultRedisURL        = "redis://localhost:6379/0"
	defaultMetricsPort     = "9090"
)
