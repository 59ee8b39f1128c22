package espn

import (
	"fmt"

	"github.com/preston-bernstein/rookie-play-service/internal/domain/games"
	"github.com/preston-bernstein/rookie-play-service/internal/domain/teams"
	"github.com/preston-bernstein/rookie-play-service/internal/payload"
	"github.com/preston-bernstein/rookie-play-service/internal/providers"
)

// playListKeys is the priority order for locating the play list in a core plays payload.
var playListKeys = []string{"items", "plays", "entries", "play"}

// cdnPlayListKeys is the priority order for the CDN play-by-play payload.
var cdnPlayListKeys = []string{"play", "plays"}

// MapScoreboard reshapes a scoreboard payload into compact game records, preserving event order.
func MapScoreboard(p map[string]any) ([]games.Game, error) {
	raw, ok := p["events"]
	if !ok || raw == nil {
		return []games.Game{}, nil
	}
	events, ok := payload.List(raw)
	if !ok {
		return nil, &providers.ShapeError{Path: "events", Expected: "list", Got: raw}
	}

	out := make([]games.Game, 0, len(events))
	for i, entry := range events {
		ev, ok := payload.Object(entry)
		if !ok {
			return nil, &providers.ShapeError{Path: fmt.Sprintf("events[%d]", i), Expected: "object", Got: entry}
		}
		out = append(out, mapEvent(ev))
	}
	return out, nil
}

func mapEvent(ev map[string]any) games.Game {
	game := games.Game{
		ID:        payload.StringPtr(ev, "id"),
		Status:    payload.StringPtr(ev, "status", "type", "name"),
		StartTime: payload.StringPtr(ev, "date"),
	}

	competitions, _ := payload.ListAt(ev, "competitions")
	if len(competitions) == 0 {
		return game
	}
	comp, _ := payload.Object(competitions[0])
	competitors, _ := payload.ListAt(comp, "competitors")

	game.HomeTeam = mapTeamRef(findCompetitor(competitors, "home"))
	game.AwayTeam = mapTeamRef(findCompetitor(competitors, "away"))
	return game
}

func findCompetitor(competitors []any, role string) map[string]any {
	for _, c := range competitors {
		obj, ok := payload.Object(c)
		if !ok {
			continue
		}
		if side, _ := payload.String(obj, "homeAway"); side == role {
			return obj
		}
	}
	return map[string]any{}
}

func mapTeamRef(competitor map[string]any) *games.TeamRef {
	team, _ := payload.ObjectAt(competitor, "team")
	return &games.TeamRef{
		ID:   payload.StringPtr(team, "id"),
		Name: payload.StringPtr(team, "displayName"),
		Abbr: abbreviation(team),
	}
}

// MapTeams reshapes the teams catalog. Missing or empty sports/leagues/teams levels yield an empty list.
func MapTeams(p map[string]any) ([]teams.Team, error) {
	entries := catalogTeams(p)
	out := make([]teams.Team, 0, len(entries))
	for i, entry := range entries {
		obj, ok := payload.Object(entry)
		if !ok {
			return nil, &providers.ShapeError{Path: fmt.Sprintf("sports[0].leagues[0].teams[%d]", i), Expected: "object", Got: entry}
		}
		if inner, ok := payload.ObjectAt(obj, "team"); ok {
			obj = inner
		}
		out = append(out, mapTeam(obj))
	}
	return out, nil
}

func catalogTeams(p map[string]any) []any {
	sports, _ := payload.ListAt(p, "sports")
	if len(sports) == 0 {
		return nil
	}
	sport, _ := payload.Object(sports[0])
	leagues, _ := payload.ListAt(sport, "leagues")
	if len(leagues) == 0 {
		return nil
	}
	league, _ := payload.Object(leagues[0])
	entries, _ := payload.ListAt(league, "teams")
	return entries
}

func mapTeam(team map[string]any) teams.Team {
	name := payload.StringPtr(team, "displayName")
	if name == nil || *name == "" {
		name = payload.StringPtr(team, "name")
	}
	return teams.Team{
		ID:   payload.StringPtr(team, "id"),
		Name: name,
		Abbr: abbreviation(team),
		Logo: firstLogo(team),
	}
}

func firstLogo(team map[string]any) *string {
	logos, _ := payload.ListAt(team, "logos")
	if len(logos) == 0 {
		return nil
	}
	logo, _ := payload.Object(logos[0])
	return payload.StringPtr(logo, "href")
}

func abbreviation(team map[string]any) *string {
	if abbr := payload.StringPtr(team, "abbrev"); abbr != nil {
		return abbr
	}
	return payload.StringPtr(team, "abbreviation")
}

// ExtractPlays locates the play list in a core plays payload. The first non-empty list among
// items, plays, entries and play wins; an object under one of those keys is searched one level deeper.
func ExtractPlays(p map[string]any) []any {
	for _, key := range playListKeys {
		switch v := p[key].(type) {
		case []any:
			if len(v) > 0 {
				return v
			}
		case map[string]any:
			if nested := firstList(v, playListKeys); len(nested) > 0 {
				return nested
			}
		}
	}
	return []any{}
}

// ExtractCDNPlays reads the play list from a CDN play-by-play payload.
func ExtractCDNPlays(p map[string]any) []any {
	if plays := firstList(p, cdnPlayListKeys); plays != nil {
		return plays
	}
	return []any{}
}

func firstList(m map[string]any, keys []string) []any {
	for _, key := range keys {
		if l, ok := m[key].([]any); ok && len(l) > 0 {
			return l
		}
	}
	return nil
}

// FindPlay returns the first play whose id or displayId, compared as strings, equals playID.
func FindPlay(plays []any, playID string) (map[string]any, bool) {
	for _, entry := range plays {
		play, ok := payload.Object(entry)
		if !ok {
			continue
		}
		if matchesID(play, "id", playID) || matchesID(play, "displayId", playID) {
			return play, true
		}
	}
	return nil, false
}

func matchesID(play map[string]any, key, want string) bool {
	got := payload.StringPtr(play, key)
	return got != nil && *got == want
}
