package deck

import "errors"

// Size is the number of cards in a standard deck
const Size = 52

// ErrDeckExhausted is returned when dealing from an empty deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Shuffler produces a random permutation of n elements by calling swap.
// *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck represents a deck of playing cards. Cards are dealt from the end of
// the sequence, so dealing order is the shuffled order read backwards.
type Deck struct {
	cards    []Card
	shuffler Shuffler
}

// NewDeck creates a standard 52-card deck in construction order. Nothing is
// shuffled until Shuffle is called.
func NewDeck(shuffler Shuffler) *Deck {
	d := &Deck{
		cards:    make([]Card, 0, Size),
		shuffler: shuffler,
	}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	return d
}

// NewDeckFromCards creates a deck holding exactly the given cards. The last
// card in the slice is dealt first.
func NewDeckFromCards(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// NewStackedDeck creates a deck that deals the given cards in order: the
// first card in the slice is dealt first.
func NewStackedDeck(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// Shuffle reorders the cards in place using the deck's shuffler. A deck
// without a shuffler is left untouched.
func (d *Deck) Shuffle() {
	if d.shuffler == nil {
		return
	}
	d.shuffler.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the last card in the deck
func (d *Deck) Deal() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrDeckExhausted
	}

	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in sequence order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
