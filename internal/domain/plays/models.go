package plays

import (
	"bytes"
	"encoding/json"
)

// Variant selects which explanation field accompanies the derived facts.
type Variant int

const (
	// VariantNone is used for plays that could not be located.
	VariantNone Variant = iota
	// VariantRules carries the rule-based possible_alternatives list.
	VariantRules
	// VariantAI carries a model-generated ai_explanation when one is available.
	VariantAI
)

// Score holds the scoreboard numbers read from a play. Values are forwarded as the upstream wrote them.
type Score struct {
	Home   any `json:"home,omitempty"`
	Away   any `json:"away,omitempty"`
	Change any `json:"change,omitempty"`
}

// Numbers is the numbers_explained block.
type Numbers struct {
	Yards any    `json:"yards,omitempty"`
	Score *Score `json:"score,omitempty"`
}

// Explanation is the beginner-facing description of a single play.
type Explanation struct {
	Variant              Variant
	WhatHappened         string
	WhyThePlayHappened   string
	PossibleAlternatives []string
	AIExplanation        string
	NumbersExplained     Numbers
}

// NotFound is the explanation returned when a play cannot be located.
func NotFound() Explanation {
	return Explanation{
		Variant:      VariantNone,
		WhatHappened: "Play not found",
	}
}

type wireExplanation struct {
	WhatHappened         string    `json:"what_happened"`
	WhyThePlayHappened   string    `json:"why_the_play_happened"`
	PossibleAlternatives *[]string `json:"possible_alternatives,omitempty"`
	AIExplanation        *string   `json:"ai_explanation,omitempty"`
	NumbersExplained     Numbers   `json:"numbers_explained"`
}

// MarshalJSON emits possible_alternatives only for the rules variant (always as a list)
// and ai_explanation only for the ai variant when text is present. Text is not HTML-escaped.
func (e Explanation) MarshalJSON() ([]byte, error) {
	wire := wireExplanation{
		WhatHappened:       e.WhatHappened,
		WhyThePlayHappened: e.WhyThePlayHappened,
		NumbersExplained:   e.NumbersExplained,
	}
	switch e.Variant {
	case VariantRules:
		alts := e.PossibleAlternatives
		if alts == nil {
			alts = []string{}
		}
		wire.PossibleAlternatives = &alts
	case VariantAI:
		if e.AIExplanation != "" {
			text := e.AIExplanation
			wire.AIExplanation = &text
		}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wire); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ExplainResponse is the payload returned by /api/games/{id}/explain-play.
type ExplainResponse struct {
	GameID      string      `json:"game_id"`
	PlayID      string      `json:"play_id"`
	Explanation Explanation `json:"explanation"`
}

// ListResponse is the payload returned by /api/games/{id}/plays.
type ListResponse struct {
	GameID string `json:"game_id"`
	Plays  []any  `json:"plays"`
}

// NewListResponse builds a ListResponse, never encoding a null list.
func NewListResponse(gameID string, items []any) ListResponse {
	if items == nil {
		items = []any{}
	}
	return ListResponse{GameID: gameID, Plays: items}
}
