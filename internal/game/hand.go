package game

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

const (
	// BustLimit is the highest value a hand can hold without busting
	BustLimit = 21

	// DealerStandsOn is the value at which the dealer stops drawing
	DealerStandsOn = 17

	// aceReduction converts an ace counted as 11 into one counted as 1
	aceReduction = 10
)

// Hand holds the cards of one participant along with the running value and
// the number of aces still counted as 11.
type Hand struct {
	cards []deck.Card
	value int
	aces  int
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{cards: make([]deck.Card, 0, 4)}
}

// AddCard appends a card and adds its value. Aces go in at 11; no adjustment
// happens here.
func (h *Hand) AddCard(card deck.Card) {
	h.cards = append(h.cards, card)
	h.value += card.Value()
	if card.IsAce() {
		h.aces++
	}
}

// AdjustForAces softens a single ace from 11 to 1 when the hand is over 21.
// It converts at most one ace per call and reports whether it did.
func (h *Hand) AdjustForAces() bool {
	if h.value > BustLimit && h.aces > 0 {
		h.value -= aceReduction
		h.aces--
		return true
	}
	return false
}

// Value returns the current hand value
func (h *Hand) Value() int {
	return h.value
}

// Aces returns the number of aces still counted as 11
func (h *Hand) Aces() int {
	return h.aces
}

// IsSoft returns true if at least one ace is counted as 11
func (h *Hand) IsSoft() bool {
	return h.aces > 0
}

// IsBust returns true if the hand is over 21
func (h *Hand) IsBust() bool {
	return h.value > BustLimit
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the order they were dealt
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// String returns a compact form such as "[A♠ K♥] 21"
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.Short()
	}
	return fmt.Sprintf("[%s] %d", strings.Join(parts, " "), h.value)
}

// HitHand deals one card into the hand and applies a single ace adjustment
func HitHand(d *deck.Deck, h *Hand) (deck.Card, error) {
	card, err := d.Deal()
	if err != nil {
		return deck.Card{}, err
	}
	h.AddCard(card)
	h.AdjustForAces()
	return card, nil
}

// PlayDealer draws for the dealer until the hand reaches 17 or more and
// returns the number of cards drawn.
func PlayDealer(d *deck.Deck, h *Hand) (int, error) {
	hits := 0
	for h.Value() < DealerStandsOn {
		if _, err := HitHand(d, h); err != nil {
			return hits, fmt.Errorf("dealer hit: %w", err)
		}
		hits++
	}
	return hits, nil
}
