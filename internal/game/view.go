package game

import (
	"github.com/lox/starjack/internal/audit"
	"github.com/lox/starjack/internal/deck"
)

// Summary is the read-only view of a state handed to renderers and debug
// output. It holds copies, so callers may keep it across transitions.
type Summary struct {
	Seed              uint32      `json:"seed"`
	Phase             Phase       `json:"phase"`
	PlayerTotal       float64     `json:"playerTotal"`
	DealerTotal       float64     `json:"dealerTotal"`
	DeckSize          int         `json:"deckSize"`
	Bankroll          int         `json:"bankroll"`
	Bet               int         `json:"bet"`
	Player            []string    `json:"player"`
	Dealer            []string    `json:"dealer"`
	PlayerInitialBust bool        `json:"playerInitialBust"`
	Message           string      `json:"message"`
	Log               audit.Trail `json:"log"`
}

// Summarize derives the read-only view of s
func Summarize(s State) Summary {
	return Summary{
		Seed:              s.Seed,
		Phase:             s.Phase,
		PlayerTotal:       s.PlayerTotal(),
		DealerTotal:       s.DealerTotal(),
		DeckSize:          len(s.Deck),
		Bankroll:          s.Bankroll,
		Bet:               s.Bet,
		Player:            deck.IDs(s.PlayerHand),
		Dealer:            deck.IDs(s.DealerHand),
		PlayerInitialBust: s.PlayerInitialBust,
		Message:           s.Message,
		Log:               s.Log.Clone(),
	}
}
