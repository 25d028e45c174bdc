package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/starjack/internal/randutil"
)

func TestShuffleIsPermutation(t *testing.T) {
	canonical := Canonical()
	shuffled := Shuffle(canonical, randutil.New(42))

	require.Len(t, shuffled, Size)
	assert.Equal(t, IDSet(canonical), IDSet(shuffled))
	assert.NotEqual(t, canonical, shuffled, "a 77-card shuffle should move something")

	// Input must not be modified.
	assert.Equal(t, Canonical(), canonical)
}

func TestShuffleDeterministicForSeed(t *testing.T) {
	a := NewShuffled(randutil.New(7))
	b := NewShuffled(randutil.New(7))
	c := NewShuffled(randutil.New(8))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestShuffleRoughlyUniform(t *testing.T) {
	// Position of a single card across many shuffles of a small deck.
	cards := MustParseIDs("Spade-1", "Spade-2", "Spade-3", "Spade-4")
	rng := randutil.New(1)
	counts := make(map[int]int)
	const rounds = 8000
	for range rounds {
		out := Shuffle(cards, rng)
		for pos, c := range out {
			if c.ID() == "Spade-1" {
				counts[pos]++
			}
		}
	}
	for pos := range len(cards) {
		assert.InDelta(t, rounds/len(cards), counts[pos], rounds*0.05, "position %d", pos)
	}
}

func TestShuffleSecureSource(t *testing.T) {
	shuffled := NewShuffled(randutil.Secure())
	assert.Equal(t, CanonicalIDs(), IDSet(shuffled))
}

func TestShuffleEmpty(t *testing.T) {
	assert.Empty(t, Shuffle(nil, randutil.New(1)))
}
