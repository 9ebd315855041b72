// Package bot provides automated blackjack players that satisfy game.Agent.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/game"
)

// Config holds the settings shared by every bot
type Config struct {
	// Bet is the wager per round; bots never bet more than they hold
	Bet int

	// Rounds is how many rounds the bot plays before declining another
	Rounds int

	// StandOn is the value at which threshold bots stop hitting
	StandOn int
}

// Factory builds a bot from shared config
type Factory func(cfg Config, rng *rand.Rand, logger *log.Logger) game.Agent

var registry = map[string]Factory{
	"threshold": func(cfg Config, _ *rand.Rand, logger *log.Logger) game.Agent {
		return NewThresholdBot(cfg, logger)
	},
	"dealer": func(cfg Config, _ *rand.Rand, logger *log.Logger) game.Agent {
		cfg.StandOn = game.DealerStandsOn
		return NewThresholdBot(cfg, logger)
	},
	"random": func(cfg Config, rng *rand.Rand, logger *log.Logger) game.Agent {
		return NewRandBot(cfg, rng, logger)
	},
}

// New creates the named bot
func New(name string, cfg Config, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, Names())
	}
	return factory(cfg, rng, logger), nil
}

// Names lists the registered strategies in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// roundBudget answers PlayAgain until the configured number of rounds is used
type roundBudget struct {
	limit  int
	played int
}

func (b *roundBudget) another() bool {
	b.played++
	return b.played < b.limit
}

func capBet(bet, total int) int {
	return max(0, min(bet, total))
}
