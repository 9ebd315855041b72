package game

// Outcome is how a round was resolved
type Outcome int

const (
	PlayerBust Outcome = iota
	DealerBust
	DealerWins
	PlayerWins
	Push
)

var outcomeNames = [...]string{
	PlayerBust: "player_bust",
	DealerBust: "dealer_bust",
	DealerWins: "dealer_wins",
	PlayerWins: "player_wins",
	Push:       "push",
}

func (o Outcome) String() string {
	if o < PlayerBust || o > Push {
		return "unknown"
	}
	return outcomeNames[o]
}

// ParseOutcome is the inverse of Outcome.String
func ParseOutcome(s string) (Outcome, bool) {
	for i, name := range outcomeNames {
		if name == s {
			return Outcome(i), true
		}
	}
	return 0, false
}

// PlayerWon reports whether the outcome pays the player
func (o Outcome) PlayerWon() bool {
	return o == DealerBust || o == PlayerWins
}

// PlayerLost reports whether the outcome costs the player their bet
func (o Outcome) PlayerLost() bool {
	return o == PlayerBust || o == DealerWins
}

// Settle resolves final hand values. A busted player loses before the
// dealer's hand is considered.
func Settle(playerValue, dealerValue int) Outcome {
	switch {
	case playerValue > BustLimit:
		return PlayerBust
	case dealerValue > BustLimit:
		return DealerBust
	case dealerValue > playerValue:
		return DealerWins
	case dealerValue < playerValue:
		return PlayerWins
	default:
		return Push
	}
}

// Apply moves chips on the ledger for this outcome
func (o Outcome) Apply(ledger *ChipLedger) {
	switch {
	case o.PlayerWon():
		ledger.WinBet()
	case o.PlayerLost():
		ledger.LoseBet()
	default:
		ledger.Push()
	}
}
