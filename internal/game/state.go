package game

import (
	"github.com/lox/starjack/internal/audit"
	"github.com/lox/starjack/internal/deck"
)

// Phase is the stage of the current hand
type Phase string

const (
	PhaseLobby  Phase = "LOBBY"
	PhasePlayer Phase = "PLAYER"
	PhaseDealer Phase = "DEALER"
	PhaseDone   Phase = "DONE"
)

const (
	// StartingBankroll is the bankroll of a fresh run.
	StartingBankroll = 10000
	// MaxBet is the upper bound of the bet.
	MaxBet = 50
	// DefaultBet is placed by BET_PLACE_CTA when no bet is set.
	DefaultBet = 10

	// Thresholds in hundredths of a point, see deck.Card.Hundredths.
	bustAbove     = 2100
	dealerStandAt = 1700

	// MaxDealerDraws caps the dealer loop. It is never reached with a
	// consistent deck.
	MaxDealerDraws = 50
)

// State is one immutable snapshot of a session. Engine.Apply returns a new
// State and never modifies the one it is given.
type State struct {
	Seed              uint32
	Phase             Phase
	Deck              []deck.Card
	PlayerHand        []deck.Card
	DealerHand        []deck.Card
	Bankroll          int
	Bet               int
	Message           string
	PlayerInitialBust bool
	Log               audit.Trail
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.Deck = deck.Clone(s.Deck)
	c.PlayerHand = deck.Clone(s.PlayerHand)
	c.DealerHand = deck.Clone(s.DealerHand)
	c.Log = s.Log.Clone()
	return c
}

// PlayerTotal returns the player's hand total
func (s State) PlayerTotal() float64 {
	return deck.Total(s.PlayerHand)
}

// DealerTotal returns the dealer's hand total
func (s State) DealerTotal() float64 {
	return deck.Total(s.DealerHand)
}

// InPlay returns the ids held in either hand
func (s State) InPlay() map[string]struct{} {
	return deck.IDSet(s.PlayerHand, s.DealerHand)
}

// Snapshot summarises s for an audit entry
func (s State) Snapshot() audit.Snapshot {
	return audit.Snapshot{
		Seed:              s.Seed,
		Phase:             string(s.Phase),
		DeckCount:         len(s.Deck),
		Bankroll:          s.Bankroll,
		Bet:               s.Bet,
		Player:            deck.IDs(s.PlayerHand),
		Dealer:            deck.IDs(s.DealerHand),
		PlayerTotal:       s.PlayerTotal(),
		DealerTotal:       s.DealerTotal(),
		PlayerInitialBust: s.PlayerInitialBust,
		Message:           s.Message,
	}
}

// IsBust reports whether the hand total is strictly above 21
func IsBust(hand []deck.Card) bool {
	return deck.TotalHundredths(hand) > bustAbove
}

func clampBet(bet int) int {
	return max(0, min(bet, MaxBet))
}
