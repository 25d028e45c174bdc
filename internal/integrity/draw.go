package integrity

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/starjack/internal/deck"
)

// Draw is the result of TakeUnique.
type Draw struct {
	Cards []deck.Card
	Deck  []deck.Card

	// Skipped counts blocked cards that were discarded from the front of the deck.
	Skipped int
	// Regenerations counts how many times the deck had to be rebuilt mid-draw.
	Regenerations int
}

// TakeUnique draws exactly n cards from the front of d. Every drawn card is
// distinct from the others and from inPlay. A blocked card is dropped rather
// than returned to the deck. After MaxUnproductiveDraws consecutive blocked
// cards, or when the deck runs dry, the deck is regenerated from the canonical
// universe minus inPlay and the cards drawn so far.
//
// The only failure is ErrUniverseExhausted, when the universe cannot supply n
// unblocked cards at all; no partial draw is returned in that case.
func TakeUnique(d []deck.Card, n int, inPlay map[string]struct{}, rng *rand.Rand) (Draw, error) {
	if n <= 0 {
		return Draw{Cards: []deck.Card{}, Deck: deck.Clone(d)}, nil
	}

	blocked := make(map[string]struct{}, len(inPlay)+n)
	for id := range inPlay {
		blocked[id] = struct{}{}
	}

	if available := deck.Size - len(blocked); available < n {
		return Draw{}, fmt.Errorf("%w: need %d cards, %d unblocked", ErrUniverseExhausted, n, available)
	}

	out := Draw{
		Cards: make([]deck.Card, 0, n),
		Deck:  deck.Clone(d),
	}

	unproductive := 0
	for len(out.Cards) < n {
		if len(out.Deck) == 0 || unproductive >= MaxUnproductiveDraws {
			out.Deck = Rebuild(blocked, rng)
			out.Regenerations++
			unproductive = 0
			// blocked only grows, and we checked there are enough free ids
			// above, so a rebuilt deck is never empty here.
		}

		c := out.Deck[0]
		out.Deck = out.Deck[1:]

		if _, isBlocked := blocked[c.ID()]; isBlocked || !c.Valid() {
			out.Skipped++
			unproductive++
			continue
		}

		blocked[c.ID()] = struct{}{}
		out.Cards = append(out.Cards, c)
		unproductive = 0
	}

	out.Deck = deck.Clone(out.Deck)
	return out, nil
}
