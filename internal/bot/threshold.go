package bot

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/game"
)

// ThresholdBot hits until its hand reaches StandOn and always bets flat
type ThresholdBot struct {
	cfg    Config
	budget roundBudget
	logger *log.Logger
}

// NewThresholdBot creates a new ThresholdBot instance
func NewThresholdBot(cfg Config, logger *log.Logger) *ThresholdBot {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ThresholdBot{
		cfg:    cfg,
		budget: roundBudget{limit: cfg.Rounds},
		logger: logger,
	}
}

func (b *ThresholdBot) Wager(_ context.Context, total int) (int, error) {
	return capBet(b.cfg.Bet, total), nil
}

func (b *ThresholdBot) Decide(_ context.Context, view game.TableView) (game.Decision, error) {
	if view.PlayerValue < b.cfg.StandOn {
		return game.Hit, nil
	}
	return game.Stand, nil
}

func (b *ThresholdBot) PlayAgain(_ context.Context, total int) (bool, error) {
	again := b.budget.another()
	if !again {
		b.logger.Debug("threshold-bot done", "rounds", b.budget.played, "total", total)
	}
	return again, nil
}
