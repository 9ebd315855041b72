package game

import (
	"context"
	"errors"

	"github.com/lox/blackjack-cli/internal/deck"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedAgent replays fixed bets, decisions and play-again answers. Running
// out of decisions stands; running out of anything else quits.
type scriptedAgent struct {
	bets      []int
	decisions []Decision
	again     []bool

	wagerCalls  int
	decideCalls int
	views       []TableView
}

func (a *scriptedAgent) Wager(ctx context.Context, total int) (int, error) {
	a.wagerCalls++
	if len(a.bets) == 0 {
		return 0, ErrQuit
	}
	bet := a.bets[0]
	a.bets = a.bets[1:]
	return bet, nil
}

func (a *scriptedAgent) Decide(ctx context.Context, view TableView) (Decision, error) {
	a.decideCalls++
	a.views = append(a.views, view)
	if len(a.decisions) == 0 {
		return Stand, nil
	}
	d := a.decisions[0]
	a.decisions = a.decisions[1:]
	return d, nil
}

func (a *scriptedAgent) PlayAgain(ctx context.Context, total int) (bool, error) {
	if len(a.again) == 0 {
		return false, ErrQuit
	}
	again := a.again[0]
	a.again = a.again[1:]
	return again, nil
}

// recordingObserver keeps everything it is shown
type recordingObserver struct {
	rejected []error
	tables   []TableView
	results  []*RoundResult
	totals   []int
	failures []error
}

func (o *recordingObserver) BetRejected(err error) { o.rejected = append(o.rejected, err) }
func (o *recordingObserver) ShowTable(view TableView) { o.tables = append(o.tables, view) }
func (o *recordingObserver) ShowResult(result *RoundResult) { o.results = append(o.results, result) }
func (o *recordingObserver) ShowTotal(total int) { o.totals = append(o.totals, total) }
func (o *recordingObserver) RoundFailed(err error) { o.failures = append(o.failures, err) }

type sliceRecorder struct {
	results []*RoundResult
}

func (r *sliceRecorder) Record(result *RoundResult) {
	r.results = append(r.results, result)
}

// stacked builds a deck that deals the cards in order, e.g.
// stacked("Th9h", "7cKd", "5s") deals player T♥ 9♥, dealer 7♣ K♦, then 5♠.
func stacked(groups ...string) *deck.Deck {
	var cards []deck.Card
	for _, g := range groups {
		cards = append(cards, deck.MustParseCards(g)...)
	}
	return deck.NewStackedDeck(cards)
}

func handOf(s string) *Hand {
	h := NewHand()
	for _, c := range deck.MustParseCards(s) {
		h.AddCard(c)
	}
	return h
}
