package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/lox/starjack/internal/deck"
	"github.com/lox/starjack/internal/randutil"
)

func newTestEngine(t *testing.T) (*Engine, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
	return NewEngine(WithRNG(randutil.New(42)), WithClock(clock), WithLogger(logger)), clock
}

// stacked returns a full deck whose front is the given ids in order,
// followed by every other card in canonical order.
func stacked(t *testing.T, front ...string) []deck.Card {
	t.Helper()
	cards := deck.MustParseIDs(front...)
	used := deck.IDSet(cards)
	require.Len(t, used, len(cards), "stacked ids must be distinct")
	for _, c := range deck.Canonical() {
		if _, ok := used[c.ID()]; !ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// lobbyState builds a LOBBY state with the given bet and a stacked deck.
func lobbyState(t *testing.T, bet int, front ...string) State {
	t.Helper()
	return State{
		Seed:       7,
		Phase:      PhaseLobby,
		Deck:       stacked(t, front...),
		PlayerHand: []deck.Card{},
		DealerHand: []deck.Card{},
		Bankroll:   StartingBankroll,
		Bet:        bet,
	}
}

func lastKind(t *testing.T, s State) string {
	t.Helper()
	e, ok := s.Log.Last()
	require.True(t, ok, "audit trail is empty")
	return e.Kind
}

func requireConsistent(t *testing.T, s State) {
	t.Helper()
	require.NoError(t, CheckInvariants(s))
}

// play applies actions in order, checking invariants after each step.
func play(t *testing.T, e *Engine, s State, actions ...Action) State {
	t.Helper()
	for _, a := range actions {
		s = e.Apply(s, a)
		requireConsistent(t, s)
	}
	return s
}

var (
	start      = Action{Kind: Start}
	stand      = Action{Kind: Stand}
	nextHand   = Action{Kind: NextHand}
	dealerPlay = Action{Kind: DealerPlay}
)
