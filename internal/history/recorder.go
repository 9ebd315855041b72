package history

import (
	"sync"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// Recorder collects settled rounds for a single session. It satisfies
// game.Recorder and is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	clock   quartz.Clock
	session SessionRecord
}

// NewRecorder starts a session record stamped with clock's current time
func NewRecorder(clock quartz.Clock, startingChips int, seed int64) *Recorder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Recorder{
		clock: clock,
		session: SessionRecord{
			ID:            uuid.NewString(),
			Started:       clock.Now().UTC(),
			Seed:          seed,
			StartingChips: startingChips,
			FinalChips:    startingChips,
		},
	}
}

// Record appends a settled round
func (r *Recorder) Record(result *game.RoundResult) {
	if result == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.session.Rounds = append(r.session.Rounds, RoundRecord{
		Number:      result.Number,
		Time:        r.clock.Now().UTC(),
		Bet:         result.Bet,
		Outcome:     result.Outcome.String(),
		PlayerCards: shortCards(result.Player),
		PlayerValue: result.PlayerValue,
		DealerCards: shortCards(result.Dealer),
		DealerValue: result.DealerValue,
		TotalAfter:  result.Total,
	})
	r.session.FinalChips = result.Total
}

// Finish stamps the end of the session and returns a copy of the record
func (r *Recorder) Finish(finalChips int) SessionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session.Finished = r.clock.Now().UTC()
	r.session.FinalChips = finalChips
	return r.snapshot()
}

// Session returns a copy of the record so far
func (r *Recorder) Session() SessionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *Recorder) snapshot() SessionRecord {
	s := r.session
	s.Rounds = append([]RoundRecord(nil), r.session.Rounds...)
	return s
}

func shortCards(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Short()
	}
	return out
}
