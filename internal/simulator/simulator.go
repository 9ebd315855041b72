// Package simulator plays many headless blackjack sessions with a bot and
// aggregates the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack-cli/internal/bot"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions      int
	Rounds        int // per session
	Strategy      string
	Bet           int
	StandOn       int
	StartingChips int
	Seed          int64
	Workers       int
	Timeout       time.Duration
	Logger        *log.Logger
}

func (c *Config) applyDefaults() {
	if c.Sessions <= 0 {
		c.Sessions = 1
	}
	if c.Rounds <= 0 {
		c.Rounds = 1
	}
	if c.Strategy == "" {
		c.Strategy = "dealer"
	}
	if c.StandOn <= 0 {
		c.StandOn = game.DealerStandsOn
	}
	if c.StartingChips <= 0 {
		c.StartingChips = game.DefaultStartingChips
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
}

// Simulator runs blackjack sessions in parallel
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	config.applyDefaults()
	return &Simulator{config: config}
}

// Config returns the effective configuration after defaults
func (s *Simulator) Config() Config {
	return s.config
}

// Run plays every session and returns the combined statistics. Session i is
// seeded from Derive(Seed, i), so results do not depend on worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if _, err := bot.New(s.config.Strategy, bot.Config{}, randutil.New(0), nil); err != nil {
		return nil, err
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	perSession := make([]*statistics.Statistics, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Sessions {
		g.Go(func() error {
			stats, err := s.playSession(ctx, i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i+1, err)
			}
			perSession[i] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range perSession {
		total.Merge(stats)
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete",
		"sessions", s.config.Sessions,
		"rounds", total.Rounds,
		"failed", total.Failed,
		"mean", total.Mean())
	return total, nil
}

func (s *Simulator) playSession(ctx context.Context, i int) (*statistics.Statistics, error) {
	seed := randutil.Derive(s.config.Seed, i)
	logger := s.config.Logger.With("session", i+1)

	agent, err := bot.New(s.config.Strategy, bot.Config{
		Bet:     s.config.Bet,
		Rounds:  s.config.Rounds,
		StandOn: s.config.StandOn,
	}, randutil.New(randutil.Derive(seed, 1)), logger)
	if err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	session := game.NewSession(s.config.StartingChips, agent,
		game.WithShuffler(randutil.New(seed)),
		game.WithRecorder(recorder{stats}),
		game.WithLogger(logger))

	if err := session.Run(ctx); err != nil {
		return nil, err
	}
	stats.Failed = session.RoundsFailed()

	logger.Debug("Session finished", "seed", seed, "rounds", session.RoundsPlayed(), "chips", session.Ledger().Total())
	return stats, nil
}

// recorder feeds a session's rounds into its own Statistics; sessions never
// share one, so no locking is needed.
type recorder struct {
	stats *statistics.Statistics
}

func (r recorder) Record(result *game.RoundResult) {
	r.stats.Add(result)
}

// RunSimulation is a convenience wrapper around New and Run
func RunSimulation(ctx context.Context, config Config) (*statistics.Statistics, error) {
	return New(config).Run(ctx)
}

// PrintSummary writes a summary of simulation results
func PrintSummary(w io.Writer, stats *statistics.Statistics, config Config) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS: %s strategy ===\n", config.Strategy)
	fmt.Fprintf(w, "Sessions: %d\n", config.Sessions)
	fmt.Fprintf(w, "Rounds played: %d (abandoned: %d)\n", stats.Rounds, stats.Failed)

	fmt.Fprintf(w, "\n=== OUTCOMES ===\n")
	fmt.Fprintf(w, "Wins:   %d (%.1f%%)\n", stats.Wins, stats.WinRate()*100)
	fmt.Fprintf(w, "Losses: %d (%.1f%%)\n", stats.Losses, stats.LossRate()*100)
	fmt.Fprintf(w, "Pushes: %d (%.1f%%)\n", stats.Pushes, stats.PushRate()*100)
	fmt.Fprintf(w, "Player busts: %d, dealer busts: %d\n", stats.PlayerBusts, stats.DealerBusts)

	fmt.Fprintf(w, "\n=== CHIPS ===\n")
	fmt.Fprintf(w, "Wagered: %d\n", stats.Wagered)
	fmt.Fprintf(w, "Net: %+.0f (%.2f%% of wagered)\n", stats.SumNet, stats.ReturnOnWager()*100)
	fmt.Fprintf(w, "Mean: %.4f chips/round\n", stats.Mean())
	fmt.Fprintf(w, "Std Dev: %.4f chips\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] chips/round\n", low, high)
}
