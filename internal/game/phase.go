package game

// Phase is a state of the round state machine
type Phase int

const (
	Betting Phase = iota
	InitialDeal
	PlayerTurn
	DealerTurn
	Settlement
	Done
)

var phaseNames = [...]string{
	Betting:     "betting",
	InitialDeal: "initial_deal",
	PlayerTurn:  "player_turn",
	DealerTurn:  "dealer_turn",
	Settlement:  "settlement",
	Done:        "done",
}

func (p Phase) String() string {
	if p < Betting || p > Done {
		return "unknown"
	}
	return phaseNames[p]
}
