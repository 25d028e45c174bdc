package game

import (
	"fmt"

	"github.com/lox/starjack/internal/audit"
	"github.com/lox/starjack/internal/deck"
)

// CheckInvariants reports the first way in which s is inconsistent:
// every canonical card held exactly once across deck and hands, deck
// disjoint from the hands, bet within bounds and a bounded audit trail.
func CheckInvariants(s State) error {
	canonical := deck.CanonicalIDs()
	counts := make(map[string]int, deck.Size)
	for _, group := range []struct {
		name  string
		cards []deck.Card
	}{
		{"deck", s.Deck},
		{"player", s.PlayerHand},
		{"dealer", s.DealerHand},
	} {
		for _, c := range group.cards {
			id := c.ID()
			if _, ok := canonical[id]; !ok {
				return fmt.Errorf("%s holds non-canonical card %s", group.name, id)
			}
			counts[id]++
			if counts[id] > 1 {
				return fmt.Errorf("card %s held more than once (found again in %s)", id, group.name)
			}
		}
	}
	if len(counts) != deck.Size {
		return fmt.Errorf("%d of %d cards accounted for", len(counts), deck.Size)
	}
	if s.Bet < 0 || s.Bet > MaxBet {
		return fmt.Errorf("bet %d outside [0, %d]", s.Bet, MaxBet)
	}
	if len(s.Log) > audit.Capacity {
		return fmt.Errorf("audit trail holds %d entries, capacity %d", len(s.Log), audit.Capacity)
	}
	return nil
}

// DealerStood reports whether a resolved dealer hand obeys the stand rule:
// it either busted or reached at least 17.
func DealerStood(dealer []deck.Card) bool {
	return IsBust(dealer) || deck.TotalHundredths(dealer) >= dealerStandAt
}
