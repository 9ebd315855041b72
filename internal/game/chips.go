package game

import "fmt"

// ChipLedger tracks the player's standing chips and the wager for the
// current round. The total only changes through settlement.
type ChipLedger struct {
	total int
	bet   int
}

// NewChipLedger creates a ledger holding total chips and no bet
func NewChipLedger(total int) *ChipLedger {
	return &ChipLedger{total: total}
}

// PlaceBet validates amount against the total and records it as the
// current bet. It does not retry; callers ask again on ErrInvalidBet.
func (c *ChipLedger) PlaceBet(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: bet cannot be negative", ErrInvalidBet)
	}
	if amount > c.total {
		return fmt.Errorf("%w: your bet can't exceed %d", ErrInvalidBet, c.total)
	}
	c.bet = amount
	return nil
}

// WinBet pays the current bet to the player
func (c *ChipLedger) WinBet() {
	c.total += c.bet
}

// LoseBet takes the current bet from the player
func (c *ChipLedger) LoseBet() {
	c.total -= c.bet
}

// Push leaves the total unchanged
func (c *ChipLedger) Push() {}

// Total returns the player's chip balance
func (c *ChipLedger) Total() int {
	return c.total
}

// Bet returns the wager for the current round
func (c *ChipLedger) Bet() int {
	return c.bet
}
