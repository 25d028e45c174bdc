package deck

import rand "math/rand/v2"

// Shuffle returns a uniformly random permutation of cards using Fisher-Yates.
// Each swap index is a fresh draw from rng. The input is left untouched.
func Shuffle(cards []Card, rng *rand.Rand) []Card {
	out := Clone(cards)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewShuffled returns the canonical universe in a random order
func NewShuffled(rng *rand.Rand) []Card {
	return Shuffle(Canonical(), rng)
}
