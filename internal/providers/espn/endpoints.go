package espn

import (
	"net/url"
	"strconv"
)

// Endpoints holds the base URLs of the four ESPN hosts the service reads from.
type Endpoints struct {
	Site string
	Web  string
	Core string
	CDN  string
}

// NewEndpoints normalizes base URLs, defaulting any that are empty.
func NewEndpoints(site, web, core, cdn string) Endpoints {
	return Endpoints{
		Site: normalizeBaseURL(site, defaultSiteBaseURL),
		Web:  normalizeBaseURL(web, defaultWebBaseURL),
		Core: normalizeBaseURL(core, defaultCoreBaseURL),
		CDN:  normalizeBaseURL(cdn, defaultCDNBaseURL),
	}
}

// DefaultEndpoints points at the public ESPN NFL endpoints.
func DefaultEndpoints() Endpoints {
	return NewEndpoints("", "", "", "")
}

func (e Endpoints) Scoreboard() string { return e.Site + "/scoreboard" }

func (e Endpoints) Teams() string { return e.Site + "/teams" }

func (e Endpoints) Team(id string) string { return e.Site + "/teams/" + url.PathEscape(id) }

// Game is the CDN game detail endpoint; see GameParams.
func (e Endpoints) Game() string { return e.CDN + "/game" }

// PlayByPlay is the CDN play-by-play endpoint used as a fallback; see GameParams.
func (e Endpoints) PlayByPlay() string { return e.CDN + "/playbyplay" }

// Plays is the core play list for a game. ESPN keys the single NFL competition by the event id.
func (e Endpoints) Plays(gameID string) string {
	id := url.PathEscape(gameID)
	return e.Core + "/events/" + id + "/competitions/" + id + "/plays"
}

// PlayerCandidates lists athlete endpoints from richest to most generic.
func (e Endpoints) PlayerCandidates(playerID string) []string {
	id := url.PathEscape(playerID)
	return []string{
		e.Web + "/athletes/" + id + "/overview",
		e.Web + "/athletes/" + id,
		e.Core + "/athletes/" + id,
	}
}

// GameParams are the query parameters the CDN endpoints expect.
func GameParams(gameID string) url.Values {
	return url.Values{"xhr": {"1"}, "gameId": {gameID}}
}

// LimitParams caps the number of plays returned by the core endpoint.
func LimitParams(limit int) url.Values {
	return url.Values{"limit": {strconv.Itoa(limit)}}
}
