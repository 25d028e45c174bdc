// Package game implements the single-player card game state machine.
//
// The main type is State, an immutable value describing one session: the
// deck, both hands, bankroll, bet, phase and the audit trail. An Engine turns
// a State and an Action into the next State; it never modifies its input.
//
// # Basic Usage
//
//	e := game.NewEngine(game.WithLogger(logger))
//	s := e.NewState()
//	s = e.Apply(s, game.BetAddAction(10))
//	s = e.Apply(s, game.Action{Kind: game.Start})
//	s = e.Apply(s, game.Action{Kind: game.Stand}) // dealer plays in the same transition
//	fmt.Println(game.Summarize(s).Bankroll)
//
// # Phases
//
// A hand moves LOBBY -> PLAYER -> DEALER -> DONE -> LOBBY. Actions outside
// their legal phase are rejected: the state keeps its values, gets a new
// message and a "<KIND>_BLOCKED" audit entry.
//
// # Integrity
//
// Every Apply starts by passing the deck and hands through
// integrity.Normalize, so corrupted input is repaired before any rule runs
// and callers only ever see states that hold each of the 77 cards once.
//
// # Deterministic Testing
//
// Inject a seeded generator and a mock clock:
//
//	e := game.NewEngine(
//	    game.WithRNG(randutil.New(42)),
//	    game.WithClock(quartz.NewMock(t)),
//	)
//
// Tests can also build a State with a stacked deck directly and call Apply.
package game
