package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/starjack/internal/deck"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		player    []string
		dealer    []string
		dealtBust bool
		want      Outcome
	}{
		{
			name:   "player higher",
			player: []string{"Spade-10", "Heart-10"},
			dealer: []string{"Club-10", "Moon-8"},
			want:   Win,
		},
		{
			name:   "dealer higher",
			player: []string{"Spade-10", "Heart-8"},
			dealer: []string{"Club-10", "Moon-10"},
			want:   Lose,
		},
		{
			name:   "equal totals push",
			player: []string{"Spade-10", "Heart-8"},
			dealer: []string{"Heart-10", "Spade-8"},
			want:   Push,
		},
		{
			name:   "dealer bust",
			player: []string{"Spade-2", "Heart-3"},
			dealer: []string{"Club-10", "Moon-8", "Sun-9"},
			want:   Win,
		},
		{
			name:      "dealt bust and dealer bust",
			player:    []string{"Spade-11", "Heart-11"},
			dealer:    []string{"Club-10", "Moon-2", "Sun-11"},
			dealtBust: true,
			want:      Win,
		},
		{
			name:      "dealt bust and dealer stands",
			player:    []string{"Spade-11", "Heart-11"},
			dealer:    []string{"Club-10", "Diamond-9"},
			dealtBust: true,
			want:      Lose,
		},
		{
			// The dealt-bust rule never compares totals, even when the
			// dealer stopped short of 17.
			name:      "dealt bust and short dealer hand",
			player:    []string{"Spade-11", "Heart-11"},
			dealer:    []string{"Club-2", "Diamond-3"},
			dealtBust: true,
			want:      Lose,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(deck.MustParseIDs(tt.player...), deck.MustParseIDs(tt.dealer...), tt.dealtBust)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutcomeDelta(t *testing.T) {
	assert.Equal(t, 25, Win.Delta(25))
	assert.Equal(t, -25, Lose.Delta(25))
	assert.Equal(t, 0, Push.Delta(25))
}

func TestIsBust(t *testing.T) {
	// 10.01 + 10.02 + 1.03 = 21.06 is above 21.
	assert.True(t, IsBust(deck.MustParseIDs("Spade-10", "Heart-10", "Diamond-1")))
	// 10.01 + 10.02 = 20.03.
	assert.False(t, IsBust(deck.MustParseIDs("Spade-10", "Heart-10")))
	assert.False(t, IsBust(nil))
}

func TestDealerStood(t *testing.T) {
	assert.True(t, DealerStood(deck.MustParseIDs("Spade-10", "Heart-7")), "17.03 stands")
	assert.False(t, DealerStood(deck.MustParseIDs("Spade-10", "Heart-6")), "16.03 draws")
	assert.True(t, DealerStood(deck.MustParseIDs("Spade-10", "Heart-6", "Club-9")), "bust")
}

func TestDealerCapStopsRunawayLoop(t *testing.T) {
	e, _ := newTestEngine(t)
	e.maxDealerDraws = 1

	// Dealer 2.01 + 3.02 would normally draw several cards.
	s := play(t, e, lobbyState(t, 10, "Spade-10", "Spade-2", "Heart-10", "Heart-3"), start, stand)

	assert.Len(t, s.DealerHand, 3, "cap stops the loop after one draw")
	assert.False(t, DealerStood(s.DealerHand))
	assert.Equal(t, PhaseDone, s.Phase, "the hand still resolves")
	assert.Equal(t, StartingBankroll+10, s.Bankroll)
}
