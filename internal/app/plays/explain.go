package plays

import (
	"fmt"
	"strconv"

	domainplays "github.com/preston-bernstein/rookie-play-service/internal/domain/plays"
	"github.com/preston-bernstein/rookie-play-service/internal/payload"
)

var textKeys = []string{"text", "shortText", "alternativeText", "shortAlternativeText"}

var (
	fourthDownOptions = []string{
		"Punt",
		"Go for it (attempt to convert on 4th down)",
		"Attempt a field goal",
		"Try to draw the defense offsides",
		"Fake punt",
		"Call a timeout to reconsider options",
	}
	thirdAndLongOptions = []string{
		"Short pass",
		"Screen pass",
		"Run up the middle",
		"Draw play",
		"Deep pass (take a shot downfield)",
		"Quarterback scramble",
		"Try to get a defensive penalty",
	}
	thirdAndShortOptions = []string{
		"Quarterback sneak",
		"Power run",
		"Short quick pass",
		"Play-action pass",
		"Jet sweep",
	}
	thirdAndMediumOptions = []string{
		"Standard run",
		"Short pass",
		"Screen pass",
		"Play-action pass",
		"Quarterback rollout",
	}
)

// situation is what the builder reads out of a play before rendering text.
type situation struct {
	what     string
	down     *int
	distance *float64
	// distanceText keeps the upstream spelling of the distance, e.g. "10" rather than "10.0".
	distanceText string
	yardLine     string
	quarter      int
	clock        string
	yards        any
}

func readSituation(play map[string]any) situation {
	s := situation{yardLine: "unknown"}

	for _, key := range textKeys {
		if text, ok := payload.String(play, key); ok {
			s.what = text
			break
		}
	}
	if scoring, ok := payload.String(play, "scoringType", "displayName"); ok {
		if s.what == "" {
			s.what = "(" + scoring + ")"
		} else {
			s.what += " (" + scoring + ")"
		}
	}

	if down, ok := payload.Number(play, "start", "down"); ok {
		d := int(down)
		s.down = &d
	}
	if raw, ok := payload.Lookup(play, "start", "distance"); ok {
		if dist, ok := payload.Number(play, "start", "distance"); ok {
			s.distance = &dist
			s.distanceText, _ = payload.Stringify(raw)
		}
	}
	if yl := payload.StringPtr(play, "start", "yardLine"); yl != nil {
		s.yardLine = *yl
	}
	if q, ok := payload.Number(play, "period", "number"); ok {
		s.quarter = int(q)
	}
	s.clock, _ = payload.String(play, "clock", "displayValue")
	s.yards, _ = payload.Lookup(play, "statYardage")
	return s
}

func (s situation) downAndDistance() string {
	if s.down == nil || s.distance == nil {
		return "Unknown down & distance"
	}
	return ordinal(*s.down) + " & " + s.distanceText
}

func (s situation) why() string {
	out := fmt.Sprintf("%s at the %s yard line", s.downAndDistance(), s.yardLine)
	if s.quarter != 0 {
		out += ", in the " + ordinal(s.quarter) + " quarter"
	}
	if s.clock != "" {
		out += " with " + s.clock + " left"
	}
	return out
}

func (s situation) alternatives() []string {
	if s.down == nil {
		return []string{}
	}
	var options []string
	switch {
	case *s.down == 4:
		options = fourthDownOptions
	case *s.down == 3 && s.distance != nil && *s.distance >= 7:
		options = thirdAndLongOptions
	case *s.down == 3 && s.distance != nil && *s.distance <= 2:
		options = thirdAndShortOptions
	case *s.down == 3 && s.distance != nil:
		options = thirdAndMediumOptions
	default:
		return []string{}
	}
	return append([]string(nil), options...)
}

func readNumbers(play map[string]any) domainplays.Numbers {
	var numbers domainplays.Numbers
	if yards, ok := payload.Lookup(play, "statYardage"); ok {
		numbers.Yards = yards
	}

	var score domainplays.Score
	found := false
	if v, ok := payload.Lookup(play, "homeScore"); ok {
		score.Home, found = v, true
	}
	if v, ok := payload.Lookup(play, "awayScore"); ok {
		score.Away, found = v, true
	}
	if v, ok := payload.Lookup(play, "scoreValue"); ok {
		score.Change, found = v, true
	}
	if found {
		numbers.Score = &score
	}
	return numbers
}

// describe fills the fields shared by every explanation variant.
func describe(play map[string]any) (domainplays.Explanation, situation) {
	s := readSituation(play)
	return domainplays.Explanation{
		WhatHappened:       s.what,
		WhyThePlayHappened: s.why(),
		NumbersExplained:   readNumbers(play),
	}, s
}

// ordinal renders 1st, 2nd and 3rd; everything else takes "th".
func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return strconv.Itoa(n) + "th"
	}
}
