package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// Suits lists every suit in deck construction order
var Suits = [...]Suit{Hearts, Diamonds, Spades, Clubs}

var suitNames = [...]string{
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Spades:   "Spades",
	Clubs:    "Clubs",
}

var suitSymbols = [...]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Spades:   "♠",
	Clubs:    "♣",
}

func (s Suit) valid() bool {
	return s >= Hearts && s <= Clubs
}

// String returns the display name of a suit (e.g. "Hearts")
func (s Suit) String() string {
	if !s.valid() {
		return "?"
	}
	return suitNames[s]
}

// Symbol returns the single-glyph form of a suit (e.g. "♥")
func (s Suit) Symbol() string {
	if !s.valid() {
		return "?"
	}
	return suitSymbols[s]
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

type rankInfo struct {
	name  string
	short string
	value int
}

// rankTable is indexed by Rank; slots 0 and 1 are unused.
var rankTable = [...]rankInfo{
	Two:   {"Two", "2", 2},
	Three: {"Three", "3", 3},
	Four:  {"Four", "4", 4},
	Five:  {"Five", "5", 5},
	Six:   {"Six", "6", 6},
	Seven: {"Seven", "7", 7},
	Eight: {"Eight", "8", 8},
	Nine:  {"Nine", "9", 9},
	Ten:   {"Ten", "T", 10},
	Jack:  {"Jack", "J", 10},
	Queen: {"Queen", "Q", 10},
	King:  {"King", "K", 10},
	Ace:   {"Ace", "A", 11},
}

func (r Rank) valid() bool {
	return r >= Two && r <= Ace
}

// String returns the display name of a rank (e.g. "Queen")
func (r Rank) String() string {
	if !r.valid() {
		return "?"
	}
	return rankTable[r].name
}

// Short returns the single-character form of a rank (e.g. "Q", "T")
func (r Rank) Short() string {
	if !r.valid() {
		return "?"
	}
	return rankTable[r].short
}

// Value returns the blackjack value of a rank. Aces are worth 11 here;
// counting an ace as 1 is the hand's job.
func (r Rank) Value() int {
	if !r.valid() {
		return 0
	}
	return rankTable[r].value
}

// Card represents a playing card. Cards are plain values and never change
// once dealt.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the display form of a card (e.g. "Ace of Spades")
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns the compact form of a card (e.g. "A♠")
func (c Card) Short() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// Value returns the blackjack value of the card
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// ParseCards parses compact notation such as "AsKhTd2c" into cards.
// Ranks are 2-9, T, J, Q, K, A and suits are h, d, s, c (case-insensitive).
func ParseCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, err := parseRank(s[i])
		if err != nil {
			return nil, err
		}
		suit, err := parseSuit(s[i+1])
		if err != nil {
			return nil, err
		}
		cards = append(cards, NewCard(suit, rank))
	}
	return cards, nil
}

// MustParseCards is ParseCards that panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(b byte) (Rank, error) {
	c := strings.ToUpper(string(b))
	for _, r := range Ranks {
		if r.Short() == c {
			return r, nil
		}
	}
	return 0, fmt.Errorf("invalid rank %q", c)
}

func parseSuit(b byte) (Suit, error) {
	switch b {
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 's', 'S':
		return Spades, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", string(b))
	}
}
