package bot

import (
	"context"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/game"
)

// RandBot bets a random amount up to its configured bet and flips a coin
// on every decision below 21
type RandBot struct {
	cfg    Config
	budget roundBudget
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(cfg Config, rng *rand.Rand, logger *log.Logger) *RandBot {
	if rng == nil {
		panic("rng is required for RandBot")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &RandBot{
		cfg:    cfg,
		budget: roundBudget{limit: cfg.Rounds},
		rng:    rng,
		logger: logger,
	}
}

func (r *RandBot) Wager(_ context.Context, total int) (int, error) {
	limit := capBet(r.cfg.Bet, total)
	if limit == 0 {
		return 0, nil
	}
	return 1 + r.rng.IntN(limit), nil
}

func (r *RandBot) Decide(_ context.Context, view game.TableView) (game.Decision, error) {
	if view.PlayerValue >= game.BustLimit || r.rng.IntN(2) == 0 {
		return game.Stand, nil
	}
	return game.Hit, nil
}

func (r *RandBot) PlayAgain(_ context.Context, total int) (bool, error) {
	return r.budget.another(), nil
}
