package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// DefaultStartingChips is the balance a session starts with
const DefaultStartingChips = 100

// SessionOption configures a Session during creation.
type SessionOption func(*Session)

// WithObserver sets where table state and results are shown
func WithObserver(observer Observer) SessionOption {
	return func(s *Session) { s.observer = observer }
}

// WithRecorder sets where settled rounds are recorded
func WithRecorder(recorder Recorder) SessionOption {
	return func(s *Session) { s.recorder = recorder }
}

// WithLogger sets the session and round logger
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

// WithShuffler sets the randomness used to shuffle each round's deck
func WithShuffler(shuffler deck.Shuffler) SessionOption {
	return func(s *Session) { s.shuffler = shuffler }
}

// WithDeckSource replaces deck creation entirely. The function is called
// once per round and must return a ready-to-deal deck.
func WithDeckSource(source func() *deck.Deck) SessionOption {
	return func(s *Session) { s.deckSource = source }
}

// Session plays rounds until the agent declines to continue. The chip
// ledger lives for the whole session; decks and hands are new every round.
type Session struct {
	ledger     *ChipLedger
	agent      Agent
	observer   Observer
	recorder   Recorder
	logger     *log.Logger
	shuffler   deck.Shuffler
	deckSource func() *deck.Deck

	rounds int
	failed int
}

// NewSession creates a session with startingChips in the ledger
func NewSession(startingChips int, agent Agent, opts ...SessionOption) *Session {
	if agent == nil {
		panic("agent is required for a session")
	}

	s := &Session{
		ledger: NewChipLedger(startingChips),
		agent:  agent,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.observer == nil {
		s.observer = NopObserver{}
	}
	if s.recorder == nil {
		s.recorder = nopRecorder{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.shuffler == nil {
		s.shuffler = randutil.New(randutil.Resolve(0))
	}
	if s.deckSource == nil {
		s.deckSource = s.shuffledDeck
	}
	return s
}

func (s *Session) shuffledDeck() *deck.Deck {
	d := deck.NewDeck(s.shuffler)
	d.Shuffle()
	return d
}

// Ledger returns the session's chip ledger
func (s *Session) Ledger() *ChipLedger {
	return s.ledger
}

// RoundsPlayed returns how many rounds were started, including failed ones
func (s *Session) RoundsPlayed() int {
	return s.rounds
}

// RoundsFailed returns how many rounds ended without settlement
func (s *Session) RoundsFailed() int {
	return s.failed
}

// Run plays rounds until the agent stops or its input closes. A round that
// runs out of cards is reported and skipped; the session carries on.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("Session started", "chips", s.ledger.Total())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.rounds++
		s.logger.Debug("Starting round", "round", s.rounds)

		round := NewRound(s.deckSource(), s.ledger, s.agent, s.observer, s.logger)
		result, err := round.Play(ctx)
		switch {
		case errors.Is(err, ErrQuit):
			s.logger.Info("Player quit", "round", s.rounds, "total", s.ledger.Total())
			return nil
		case errors.Is(err, ErrDeckExhausted):
			s.failed++
			s.observer.RoundFailed(err)
		case err != nil:
			return fmt.Errorf("round %d: %w", s.rounds, err)
		default:
			result.Number = s.rounds
			s.recorder.Record(result)
		}

		again, err := s.agent.PlayAgain(ctx, s.ledger.Total())
		if errors.Is(err, ErrQuit) {
			again, err = false, nil
		}
		if err != nil {
			return err
		}
		if !again {
			s.logger.Info("Session finished", "rounds", s.rounds, "total", s.ledger.Total())
			return nil
		}
	}
}
