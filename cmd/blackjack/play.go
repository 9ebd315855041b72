package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/console"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/history"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// PlayCmd runs an interactive session at the terminal
type PlayCmd struct {
	Seed      int64  `env:"BLACKJACK_SEED" help:"Shuffle seed (0 picks one from the clock)"`
	Chips     int    `help:"Starting chips (overrides config)"`
	NoColor   bool   `help:"Disable colored output"`
	History   string `help:"Record the session to this TOML file (overrides config)" type:"path"`
	NoHistory bool   `help:"Do not record the session"`
}

func (cmd *PlayCmd) apply(cfg *config.Config) {
	if cmd.Seed != 0 {
		cfg.Table.Seed = cmd.Seed
	}
	if cmd.Chips != 0 {
		cfg.Table.StartingChips = cmd.Chips
	}
	if cmd.NoColor {
		color := false
		cfg.UI.Color = &color
	}
	if cmd.History != "" {
		cfg.History.Enabled = true
		cfg.History.File = cmd.History
	}
	if cmd.NoHistory {
		cfg.History.Enabled = false
	}
}

func (cmd *PlayCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}
	cmd.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, cfg.Log.Level, globals.Debug, "GAME")
	if err != nil {
		return err
	}

	seed := randutil.Resolve(cfg.Table.Seed)
	logger.Info("Starting blackjack", "version", version, "seed", seed, "chips", cfg.Table.StartingChips)

	con, err := console.New(console.Options{
		HistoryFile: cfg.UI.InputHistory,
		Color:       cfg.ColorEnabled(),
		HiddenCard:  cfg.UI.HiddenCard,
	})
	if err != nil {
		return err
	}
	defer con.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []game.SessionOption{
		game.WithObserver(con),
		game.WithLogger(logger),
		game.WithShuffler(randutil.New(seed)),
	}

	var recorder *history.Recorder
	if cfg.History.Enabled {
		recorder = history.NewRecorder(quartz.NewReal(), cfg.Table.StartingChips, seed)
		opts = append(opts, game.WithRecorder(recorder))
	}

	session := game.NewSession(cfg.Table.StartingChips, con, opts...)

	con.Banner()
	runErr := session.Run(ctx)

	if recorder != nil {
		record := recorder.Finish(session.Ledger().Total())
		if err := history.Append(cfg.History.File, record); err != nil {
			logger.Error("Failed to save history", "file", cfg.History.File, "error", err)
		} else {
			logger.Info("History saved", "file", cfg.History.File, "rounds", len(record.Rounds))
		}
	}

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
