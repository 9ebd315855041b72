package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Round runs a single hand of blackjack from the bet through settlement.
// A Round is used once; the Session creates a new one with a fresh deck for
// every hand.
type Round struct {
	deck     *deck.Deck
	ledger   *ChipLedger
	agent    Agent
	observer Observer
	logger   *log.Logger

	player *Hand
	dealer *Hand
	phase  Phase

	playerHits int
	dealerHits int
	outcome    Outcome
}

// NewRound creates a round over the given deck. The deck should already be
// shuffled. A nil observer or logger discards output.
func NewRound(d *deck.Deck, ledger *ChipLedger, agent Agent, observer Observer, logger *log.Logger) *Round {
	if observer == nil {
		observer = NopObserver{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Round{
		deck:     d,
		ledger:   ledger,
		agent:    agent,
		observer: observer,
		logger:   logger,
		player:   NewHand(),
		dealer:   NewHand(),
		phase:    Betting,
	}
}

// Phase returns the state the round is in
func (r *Round) Phase() Phase {
	return r.phase
}

// PlayerHand returns the player's hand
func (r *Round) PlayerHand() *Hand {
	return r.player
}

// DealerHand returns the dealer's hand
func (r *Round) DealerHand() *Hand {
	return r.dealer
}

// Play drives the round to Done. An empty deck aborts the round with
// ErrDeckExhausted before any chips move; agent errors are returned as-is.
func (r *Round) Play(ctx context.Context) (*RoundResult, error) {
	for r.phase != Done {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var err error
		switch r.phase {
		case Betting:
			err = r.takeBet(ctx)
		case InitialDeal:
			err = r.dealInitial()
		case PlayerTurn:
			err = r.playerTurn(ctx)
		case DealerTurn:
			err = r.dealerTurn()
		case Settlement:
			r.settle()
		default:
			err = fmt.Errorf("unexpected phase %s", r.phase)
		}

		if err != nil {
			if errors.Is(err, ErrDeckExhausted) {
				r.logger.Error("Round aborted", "phase", r.phase, "error", err)
			}
			return nil, err
		}
	}

	r.observer.ShowTotal(r.ledger.Total())
	return r.result(), nil
}

func (r *Round) transition(next Phase) {
	r.logger.Debug("Phase transition", "from", r.phase, "to", next)
	r.phase = next
}

func (r *Round) takeBet(ctx context.Context) error {
	for {
		amount, err := r.agent.Wager(ctx, r.ledger.Total())
		if err != nil {
			return err
		}

		err = r.ledger.PlaceBet(amount)
		if err == nil {
			r.logger.Debug("Bet placed", "bet", amount, "total", r.ledger.Total())
			r.transition(InitialDeal)
			return nil
		}
		if !errors.Is(err, ErrInvalidBet) {
			return err
		}

		r.logger.Debug("Bet rejected", "bet", amount, "total", r.ledger.Total())
		r.observer.BetRejected(err)
	}
}

// dealInitial deals player, player, dealer, dealer. Opening hands are not
// adjusted for aces; only hits adjust, so a pair of aces opens at 22.
func (r *Round) dealInitial() error {
	for _, h := range []*Hand{r.player, r.player, r.dealer, r.dealer} {
		card, err := r.deck.Deal()
		if err != nil {
			return fmt.Errorf("initial deal: %w", err)
		}
		h.AddCard(card)
	}

	r.logger.Debug("Dealt", "player", r.player, "dealer", r.dealer)
	r.observer.ShowTable(r.partialView())
	r.transition(PlayerTurn)
	return nil
}

func (r *Round) playerTurn(ctx context.Context) error {
	for {
		decision, err := r.agent.Decide(ctx, r.partialView())
		if err != nil {
			return err
		}

		switch decision {
		case Hit:
			card, err := HitHand(r.deck, r.player)
			if err != nil {
				return fmt.Errorf("player hit: %w", err)
			}
			r.playerHits++
			r.logger.Debug("Player hits", "card", card, "value", r.player.Value(), "soft", r.player.IsSoft())
		case Stand:
			r.logger.Debug("Player stands", "value", r.player.Value())
		default:
			return fmt.Errorf("%w: %v", ErrUnrecognizedChoice, decision)
		}

		r.observer.ShowTable(r.partialView())

		if r.player.IsBust() {
			r.logger.Debug("Player busts", "value", r.player.Value())
			r.transition(Settlement)
			return nil
		}
		if decision == Stand {
			r.transition(DealerTurn)
			return nil
		}
	}
}

func (r *Round) dealerTurn() error {
	hits, err := PlayDealer(r.deck, r.dealer)
	r.dealerHits += hits
	if err != nil {
		return err
	}
	r.logger.Debug("Dealer done", "hits", hits, "value", r.dealer.Value(), "soft", r.dealer.IsSoft())
	r.transition(Settlement)
	return nil
}

func (r *Round) settle() {
	if r.player.IsBust() {
		r.outcome = PlayerBust
	} else {
		r.observer.ShowTable(r.fullView())
		r.outcome = Settle(r.player.Value(), r.dealer.Value())
	}
	r.outcome.Apply(r.ledger)

	r.logger.Info("Round settled",
		"outcome", r.outcome,
		"bet", r.ledger.Bet(),
		"player", r.player.Value(),
		"dealer", r.dealer.Value(),
		"total", r.ledger.Total())

	r.observer.ShowResult(r.result())
	r.transition(Done)
}

func (r *Round) partialView() TableView {
	view := TableView{
		Player:      r.player.Cards(),
		PlayerValue: r.player.Value(),
	}
	dealer := r.dealer.Cards()
	if len(dealer) > 0 {
		view.Dealer = dealer[1:]
		view.HiddenCards = 1
	}
	return view
}

func (r *Round) fullView() TableView {
	return TableView{
		Player:      r.player.Cards(),
		PlayerValue: r.player.Value(),
		Dealer:      r.dealer.Cards(),
		DealerValue: r.dealer.Value(),
	}
}

func (r *Round) result() *RoundResult {
	return &RoundResult{
		Outcome:     r.outcome,
		Bet:         r.ledger.Bet(),
		Total:       r.ledger.Total(),
		Player:      r.player.Cards(),
		PlayerValue: r.player.Value(),
		Dealer:      r.dealer.Cards(),
		DealerValue: r.dealer.Value(),
		PlayerHits:  r.playerHits,
		DealerHits:  r.dealerHits,
	}
}
