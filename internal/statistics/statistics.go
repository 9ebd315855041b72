// Package statistics aggregates settled blackjack rounds into win rates and
// chip results.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack-cli/internal/game"
)

// Statistics tracks the results of many rounds. Net values are in chips from
// the player's side.
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Every net result, for median and percentiles

	Wins        int
	Losses      int
	Pushes      int
	PlayerBusts int
	DealerBusts int

	// Chips wagered across all rounds
	Wagered int

	// Rounds abandoned because the deck ran out; not part of Rounds
	Failed int

	PlayerHits int
	DealerHits int
}

// Add incorporates a settled round
func (s *Statistics) Add(result *game.RoundResult) {
	net := float64(result.Net())
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)
	s.Wagered += result.Bet
	s.PlayerHits += result.PlayerHits
	s.DealerHits += result.DealerHits

	switch {
	case result.Outcome.PlayerWon():
		s.Wins++
	case result.Outcome.PlayerLost():
		s.Losses++
	default:
		s.Pushes++
	}

	switch result.Outcome {
	case game.PlayerBust:
		s.PlayerBusts++
	case game.DealerBust:
		s.DealerBusts++
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.PlayerBusts += other.PlayerBusts
	s.DealerBusts += other.DealerBusts
	s.Wagered += other.Wagered
	s.Failed += other.Failed
	s.PlayerHits += other.PlayerHits
	s.DealerHits += other.DealerHits
}

// Mean returns the average net chips per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of net results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of net results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	margin := 1.96 * s.StdError()
	mean := s.Mean()
	return mean - margin, mean + margin
}

// Median returns the median net result
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the net result at p (0.0 to 1.0), interpolating
// between neighbouring values
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the share of rounds the player won
func (s *Statistics) WinRate() float64 {
	return s.rate(s.Wins)
}

// LossRate returns the share of rounds the player lost
func (s *Statistics) LossRate() float64 {
	return s.rate(s.Losses)
}

// PushRate returns the share of rounds that tied
func (s *Statistics) PushRate() float64 {
	return s.rate(s.Pushes)
}

// ReturnOnWager returns net chips as a fraction of chips wagered
func (s *Statistics) ReturnOnWager() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return s.SumNet / float64(s.Wagered)
}

func (s *Statistics) rate(n int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(n) / float64(s.Rounds)
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Wins+s.Losses+s.Pushes != s.Rounds {
		return fmt.Errorf("outcome counts (%d+%d+%d) do not match rounds (%d)",
			s.Wins, s.Losses, s.Pushes, s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values length (%d) does not match rounds (%d)", len(s.Values), s.Rounds)
	}
	if s.PlayerBusts+s.DealerBusts > s.Rounds {
		return fmt.Errorf("busts (%d) exceed rounds (%d)", s.PlayerBusts+s.DealerBusts, s.Rounds)
	}
	return nil
}
