package game

import (
	"fmt"
	"strings"
)

// Decision is the player's choice during their turn
type Decision int

const (
	Hit Decision = iota
	Stand
)

func (d Decision) String() string {
	switch d {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}

// ParseDecision accepts "h" for hit and "s" for stand. Surrounding
// whitespace is ignored; anything else is ErrUnrecognizedChoice.
func ParseDecision(input string) (Decision, error) {
	switch strings.TrimSpace(input) {
	case "h":
		return Hit, nil
	case "s":
		return Stand, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedChoice, strings.TrimSpace(input))
	}
}

// ParsePlayAgain returns true only for the literal "y"
func ParsePlayAgain(input string) bool {
	return strings.TrimSpace(input) == "y"
}
