// Package history records finished blackjack rounds and persists them as TOML.
package history

import (
	"time"

	"github.com/lox/blackjack-cli/internal/game"
)

// File is the on-disk layout of a history file. Each run of the game appends
// one session.
type File struct {
	Sessions []SessionRecord `toml:"session"`
}

// SessionRecord is one sitting at the table
type SessionRecord struct {
	ID            string        `toml:"id"`
	Started       time.Time     `toml:"started"`
	Finished      time.Time     `toml:"finished,omitempty"`
	Seed          int64         `toml:"seed,omitempty"`
	StartingChips int           `toml:"starting_chips"`
	FinalChips    int           `toml:"final_chips"`
	Rounds        []RoundRecord `toml:"round"`
}

// RoundRecord is one settled round. Cards use the compact form, e.g. "A♠".
type RoundRecord struct {
	Number      int       `toml:"number"`
	Time        time.Time `toml:"time"`
	Bet         int       `toml:"bet"`
	Outcome     string    `toml:"outcome"`
	PlayerCards []string  `toml:"player_cards"`
	PlayerValue int       `toml:"player_value"`
	DealerCards []string  `toml:"dealer_cards"`
	DealerValue int       `toml:"dealer_value"`
	TotalAfter  int       `toml:"total_after"`
}

// Summary totals the rounds of one session
type Summary struct {
	Rounds int
	Wins   int
	Losses int
	Pushes int
	Net    int
}

// Summary counts wins, losses and pushes. Rounds with an unknown outcome
// name count toward Rounds only.
func (s *SessionRecord) Summary() Summary {
	sum := Summary{Rounds: len(s.Rounds), Net: s.FinalChips - s.StartingChips}
	for _, r := range s.Rounds {
		outcome, ok := game.ParseOutcome(r.Outcome)
		switch {
		case !ok:
		case outcome.PlayerWon():
			sum.Wins++
		case outcome.PlayerLost():
			sum.Losses++
		default:
			sum.Pushes++
		}
	}
	return sum
}
