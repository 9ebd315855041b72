package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/simulator"
)

// SimulateCmd plays headless sessions with a built-in bot
type SimulateCmd struct {
	Sessions int           `default:"100" help:"Number of sessions to play"`
	Rounds   int           `default:"100" help:"Rounds per session"`
	Strategy string        `default:"dealer" enum:"dealer,threshold,random" help:"Bot strategy: dealer, threshold, random"`
	Bet      int           `default:"10" help:"Bet per round"`
	StandOn  int           `default:"17" help:"Value the threshold bot stands on"`
	Chips    int           `help:"Starting chips per session (overrides config)"`
	Seed     int64         `env:"BLACKJACK_SEED" help:"Base seed (0 picks one from the clock)"`
	Workers  int           `help:"Parallel sessions (0 = GOMAXPROCS)"`
	Timeout  time.Duration `default:"5m" help:"Abort the simulation after this long"`
}

func (cmd *SimulateCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}

	chips := cfg.Table.StartingChips
	if cmd.Chips != 0 {
		chips = cmd.Chips
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level, globals.Debug, "SIM")
	if err != nil {
		return err
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = cfg.Table.Seed
	}
	seed = randutil.Resolve(seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Sessions:      cmd.Sessions,
		Rounds:        cmd.Rounds,
		Strategy:      cmd.Strategy,
		Bet:           cmd.Bet,
		StandOn:       cmd.StandOn,
		StartingChips: chips,
		Seed:          seed,
		Workers:       cmd.Workers,
		Timeout:       cmd.Timeout,
		Logger:        logger,
	})

	logger.Info("Running simulation", "sessions", cmd.Sessions, "rounds", cmd.Rounds, "strategy", cmd.Strategy, "seed", seed)
	start := time.Now()

	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(os.Stdout, stats, sim.Config())
	logger.Info("Done", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
