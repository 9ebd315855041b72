package game

import (
	"context"

	"github.com/lox/blackjack-cli/internal/deck"
)

// TableView is what a participant may see of the table. While the player is
// deciding, the dealer's first card stays face down and is left out of
// Dealer and DealerValue.
type TableView struct {
	Player      []deck.Card
	PlayerValue int
	Dealer      []deck.Card
	DealerValue int
	HiddenCards int
}

// Revealed returns true when every dealer card is face up
func (v TableView) Revealed() bool {
	return v.HiddenCards == 0
}

// RoundResult describes a settled round
type RoundResult struct {
	Number      int
	Outcome     Outcome
	Bet         int
	Total       int
	Player      []deck.Card
	PlayerValue int
	Dealer      []deck.Card
	DealerValue int
	PlayerHits  int
	DealerHits  int
}

// Net returns the chips won (positive) or lost (negative) in the round
func (r *RoundResult) Net() int {
	switch {
	case r.Outcome.PlayerWon():
		return r.Bet
	case r.Outcome.PlayerLost():
		return -r.Bet
	default:
		return 0
	}
}

// Agent supplies the player's side of a round. Implementations handle their
// own input retries; the engine only asks again after ErrInvalidBet.
type Agent interface {
	// Wager returns the amount to bet out of total
	Wager(ctx context.Context, total int) (int, error)

	// Decide returns Hit or Stand for the current partial view
	Decide(ctx context.Context, view TableView) (Decision, error)

	// PlayAgain is asked after each round
	PlayAgain(ctx context.Context, total int) (bool, error)
}

// Observer is told about everything the player should see
type Observer interface {
	BetRejected(err error)
	ShowTable(view TableView)
	ShowResult(result *RoundResult)
	ShowTotal(total int)
	RoundFailed(err error)
}

// Recorder receives every settled round
type Recorder interface {
	Record(result *RoundResult)
}

// NopObserver discards everything. Used for headless play.
type NopObserver struct{}

func (NopObserver) BetRejected(error) {}
func (NopObserver) ShowTable(TableView) {}
func (NopObserver) ShowResult(*RoundResult) {}
func (NopObserver) ShowTotal(int) {}
func (NopObserver) RoundFailed(error) {}

type nopRecorder struct{}

func (nopRecorder) Record(*RoundResult) {}
