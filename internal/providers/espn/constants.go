package espn

import "time"

const (
	defaultHTTPTimeout = 8 * time.Second
	defaultUserAgent   = "rookie-play-service/1.0"
	errorBodyLimit     = 512

	defaultSiteBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl"
	defaultWebBaseURL  = "https://site.web.api.espn.com/apis/common/v3/sports/football/nfl"
	defaultCoreBaseURL = "https://sports.core.api.espn.com/v2/sports/football/leagues/nfl"
	defaultCDNBaseURL  = "https://cdn.espn.com/core/nfl"
)
