package plays

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/rookie-play-service/internal/payload"
)

const unknownValue = "unknown"

// buildPrompt renders the single prompt sent to the narrator for a play.
func buildPrompt(s situation) string {
	quarter := unknownValue
	if s.quarter != 0 {
		quarter = strconv.Itoa(s.quarter)
	}
	clock := unknownValue
	if s.clock != "" {
		clock = s.clock
	}
	yards := unknownValue
	if text, ok := payload.Stringify(s.yards); ok {
		yards = text
	}
	play := s.what
	if play == "" {
		play = unknownValue
	}

	var b strings.Builder
	b.WriteString("Explain this NFL play to a beginner in plain language.\n")
	b.WriteString("Play: " + play + "\n")
	b.WriteString("Situation: " + s.downAndDistance() + " at the " + s.yardLine + " yard line\n")
	b.WriteString("Quarter: " + quarter + "\n")
	b.WriteString("Clock: " + clock + "\n")
	b.WriteString("Yards gained: " + yards + "\n")
	b.WriteString("Say why the team might have chosen this play and what it means for the game.")
	return b.String()
}
