package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/game"
)

func round(outcome game.Outcome, bet int) *game.RoundResult {
	return &game.RoundResult{Outcome: outcome, Bet: bet, PlayerHits: 1, DealerHits: 2}
}

func TestStatisticsEmpty(t *testing.T) {
	t.Parallel()

	stats := &Statistics{}
	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.WinRate())
	assert.Zero(t, stats.ReturnOnWager())
	assert.NoError(t, stats.Validate())
}

func TestStatisticsAdd(t *testing.T) {
	t.Parallel()

	stats := &Statistics{}
	stats.Add(round(game.PlayerWins, 10))
	stats.Add(round(game.DealerBust, 10))
	stats.Add(round(game.PlayerBust, 20))
	stats.Add(round(game.DealerWins, 10))
	stats.Add(round(game.Push, 10))

	require.NoError(t, stats.Validate())
	assert.Equal(t, 5, stats.Rounds)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 2, stats.Losses)
	assert.Equal(t, 1, stats.Pushes)
	assert.Equal(t, 1, stats.PlayerBusts)
	assert.Equal(t, 1, stats.DealerBusts)
	assert.Equal(t, 60, stats.Wagered)
	assert.Equal(t, 5, stats.PlayerHits)
	assert.Equal(t, 10, stats.DealerHits)

	assert.InDelta(t, -10.0, stats.SumNet, 1e-9)
	assert.InDelta(t, -2.0, stats.Mean(), 1e-9)
	assert.InDelta(t, 0.4, stats.WinRate(), 1e-9)
	assert.InDelta(t, 0.4, stats.LossRate(), 1e-9)
	assert.InDelta(t, 0.2, stats.PushRate(), 1e-9)
	assert.InDelta(t, -10.0/60.0, stats.ReturnOnWager(), 1e-9)
	assert.InDelta(t, 0.0, stats.Median(), 1e-9)
}

func TestStatisticsSpread(t *testing.T) {
	t.Parallel()

	stats := &Statistics{}
	stats.Add(round(game.PlayerWins, 10))
	stats.Add(round(game.DealerWins, 10))

	// values are +10 and -10
	assert.InDelta(t, 0.0, stats.Mean(), 1e-9)
	assert.InDelta(t, 200.0, stats.Variance(), 1e-9)
	assert.InDelta(t, 10.0, stats.StdError(), 1e-9)

	low, high := stats.ConfidenceInterval95()
	assert.InDelta(t, -19.6, low, 1e-9)
	assert.InDelta(t, 19.6, high, 1e-9)

	assert.InDelta(t, -10.0, stats.Percentile(0), 1e-9)
	assert.InDelta(t, 10.0, stats.Percentile(1), 1e-9)
	assert.InDelta(t, 0.0, stats.Percentile(0.5), 1e-9)
}

func TestStatisticsMerge(t *testing.T) {
	t.Parallel()

	a := &Statistics{Failed: 1}
	a.Add(round(game.PlayerWins, 5))

	b := &Statistics{}
	b.Add(round(game.DealerBust, 5))
	b.Add(round(game.PlayerBust, 5))

	a.Merge(b)
	require.NoError(t, a.Validate())
	assert.Equal(t, 3, a.Rounds)
	assert.Equal(t, 2, a.Wins)
	assert.Equal(t, 1, a.Losses)
	assert.Equal(t, 1, a.Failed)
	assert.Len(t, a.Values, 3)
	assert.InDelta(t, 5.0, a.SumNet, 1e-9)
}

func TestStatisticsValidateDetectsMismatch(t *testing.T) {
	t.Parallel()

	stats := &Statistics{Rounds: 2, Wins: 1}
	assert.ErrorContains(t, stats.Validate(), "outcome counts")

	stats = &Statistics{Rounds: 1, Wins: 1}
	assert.ErrorContains(t, stats.Validate(), "values length")
}
