package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/randutil"
)

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	t.Parallel()

	d := NewDeck(nil)
	require.Equal(t, Size, d.CardsRemaining())

	seen := make(map[Card]int)
	for _, c := range d.Cards() {
		seen[c]++
	}
	assert.Len(t, seen, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			assert.Equal(t, 1, seen[NewCard(suit, rank)], "%s", NewCard(suit, rank))
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(42))
	before := d.Cards()
	d.Shuffle()
	after := d.Cards()

	assert.Len(t, after, Size)
	assert.ElementsMatch(t, before, after)
	assert.NotEqual(t, before, after, "seeded shuffle should reorder the deck")
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a := NewDeck(randutil.New(7))
	b := NewDeck(randutil.New(7))
	a.Shuffle()
	b.Shuffle()
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestShuffleWithoutShufflerKeepsOrder(t *testing.T) {
	t.Parallel()

	d := NewDeck(nil)
	before := d.Cards()
	d.Shuffle()
	assert.Equal(t, before, d.Cards())
}

func TestDealTakesLastCard(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(3))
	d.Shuffle()
	cards := d.Cards()

	card, err := d.Deal()
	require.NoError(t, err)
	assert.Equal(t, cards[len(cards)-1], card)
	assert.Equal(t, Size-1, d.CardsRemaining())
	assert.NotContains(t, d.Cards(), card)
}

func TestDealUntilExhausted(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(11))
	d.Shuffle()
	original := d.Cards()

	dealt := make([]Card, 0, Size)
	for i := range Size {
		card, err := d.Deal()
		require.NoError(t, err, "deal %d", i+1)
		dealt = append(dealt, card)
		assert.Equal(t, Size-i-1, d.CardsRemaining())
	}

	assert.Zero(t, d.CardsRemaining())
	assert.ElementsMatch(t, original, dealt)

	_, err := d.Deal()
	assert.True(t, errors.Is(err, ErrDeckExhausted))
}

func TestStackedDeckDealsInOrder(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("AsKh2c")
	d := NewStackedDeck(cards)
	for _, want := range cards {
		got, err := d.Deal()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	d = NewDeckFromCards(cards)
	got, err := d.Deal()
	require.NoError(t, err)
	assert.Equal(t, cards[2], got)
}
