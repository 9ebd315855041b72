// Package game implements the blackjack rules engine.
//
// A Round runs one hand against the dealer as a state machine:
//
//	Betting → InitialDeal → PlayerTurn → DealerTurn → Settlement → Done
//
// A player who busts goes straight from PlayerTurn to Settlement and the
// dealer never draws. A Session strings rounds together, keeps the
// ChipLedger alive between them and asks the Agent whether to play again.
//
// # Basic Usage
//
//	ledger := game.NewChipLedger(100)
//	d := deck.NewDeck(randutil.New(42))
//	d.Shuffle()
//	result, err := game.NewRound(d, ledger, agent, observer, logger).Play(ctx)
//
// Or for repeated rounds:
//
//	s := game.NewSession(100, agent, game.WithObserver(observer))
//	err := s.Run(ctx)
//
// # Deterministic Testing
//
// Rounds take a *deck.Deck, so tests can stack one with
// deck.NewStackedDeck and know every card that will be dealt. Sessions
// accept WithDeckSource for the same purpose.
//
// # Collaborators
//
//   - Agent: supplies bets, hit/stand decisions and the play-again answer
//   - Observer: renders the table, rejected bets, outcomes and chip totals
//   - Recorder: receives each finished RoundResult
//
// Scoring follows the fixed rules of the house: aces count 11 until a hand
// would bust, at most one ace is softened per adjustment, the dealer draws
// below 17, and a natural 21 pays the same as any other win.
package game
