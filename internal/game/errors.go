package game

import (
	"errors"

	"github.com/lox/blackjack-cli/internal/deck"
)

var (
	// ErrInvalidBet means a bet was negative or larger than the chip total
	ErrInvalidBet = errors.New("invalid bet")

	// ErrUnrecognizedChoice means input did not match an expected choice
	ErrUnrecognizedChoice = errors.New("unrecognized choice")

	// ErrMalformedBetInput means bet text was not a whole number
	ErrMalformedBetInput = errors.New("malformed bet input")

	// ErrQuit means the player's input source closed; the session ends
	// without error
	ErrQuit = errors.New("player quit")

	// ErrDeckExhausted is returned when a round draws from an empty deck
	ErrDeckExhausted = deck.ErrDeckExhausted
)
