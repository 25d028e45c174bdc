// Package integrity keeps the deck and hands consistent with the canonical
// card universe.
//
// Normalize validates and, when needed, repairs a deck/hand triple so that
// every canonical card id is held exactly once. TakeUnique draws cards that
// are guaranteed distinct from each other and from the cards in play.
// Both are total: they never fail on corrupted input, they rebuild instead.
package integrity

import (
	"errors"
	rand "math/rand/v2"

	"github.com/lox/starjack/internal/deck"
)

// MaxUnproductiveDraws bounds consecutive blocked cards before TakeUnique
// regenerates the deck.
const MaxUnproductiveDraws = deck.Size

// ErrUniverseExhausted is returned when the canonical universe, minus every
// blocked id, cannot supply the requested number of cards.
var ErrUniverseExhausted = errors.New("integrity: canonical universe exhausted")

// Result is the outcome of Normalize.
type Result struct {
	Deck   []deck.Card
	Player []deck.Card
	Dealer []deck.Card

	// HandsRepaired is set when a hand lost duplicate or unknown cards.
	HandsRepaired bool
	// DeckRebuilt is set when the deck failed validation and was regenerated.
	DeckRebuilt bool
}

// Repaired reports whether Normalize changed anything.
func (r Result) Repaired() bool {
	return r.HandsRepaired || r.DeckRebuilt
}

// Normalize returns a consistent copy of the given deck and hands. The inputs
// are never modified. Applying it to an already valid triple returns the same
// cards in the same order, so it is idempotent.
func Normalize(d, player, dealer []deck.Card, rng *rand.Rand) Result {
	held := make(map[string]struct{}, len(player)+len(dealer))
	p, pChanged := dedupe(player, held)
	dl, dChanged := dedupe(dealer, held)

	res := Result{
		Player:        p,
		Dealer:        dl,
		HandsRepaired: pChanged || dChanged,
	}

	if deckValid(d, held) {
		res.Deck = deck.Clone(d)
		return res
	}

	res.Deck = Rebuild(held, rng)
	res.DeckRebuilt = true
	return res
}

// dedupe keeps the first occurrence of each canonical id not already held,
// recording kept ids in held.
func dedupe(hand []deck.Card, held map[string]struct{}) ([]deck.Card, bool) {
	out := make([]deck.Card, 0, len(hand))
	for _, c := range hand {
		if !c.Valid() {
			continue
		}
		id := c.ID()
		if _, dup := held[id]; dup {
			continue
		}
		held[id] = struct{}{}
		out = append(out, c)
	}
	return out, len(out) != len(hand)
}

// deckValid checks that d holds only canonical cards, no duplicates, nothing
// held in a hand, and that deck plus hands cover the whole universe.
func deckValid(d []deck.Card, held map[string]struct{}) bool {
	if len(d)+len(held) != deck.Size {
		return false
	}
	seen := make(map[string]struct{}, len(d))
	for _, c := range d {
		if !c.Valid() {
			return false
		}
		id := c.ID()
		if _, dup := seen[id]; dup {
			return false
		}
		if _, inHand := held[id]; inHand {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

// Rebuild regenerates the canonical universe, removes every blocked id and
// shuffles the remainder.
func Rebuild(blocked map[string]struct{}, rng *rand.Rand) []deck.Card {
	remaining := make([]deck.Card, 0, deck.Size)
	for _, c := range deck.Canonical() {
		if _, ok := blocked[c.ID()]; ok {
			continue
		}
		remaining = append(remaining, c)
	}
	return deck.Shuffle(remaining, rng)
}
