package integrity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/starjack/internal/deck"
	"github.com/lox/starjack/internal/randutil"
)

func TestTakeUniqueFromFront(t *testing.T) {
	d := deck.NewShuffled(randutil.New(1))

	draw, err := TakeUnique(d, 4, nil, randutil.New(2))
	require.NoError(t, err)

	assert.Equal(t, d[:4], draw.Cards)
	assert.Equal(t, d[4:], draw.Deck)
	assert.Zero(t, draw.Skipped)
	assert.Zero(t, draw.Regenerations)
}

func TestTakeUniqueSkipsBlocked(t *testing.T) {
	d := deck.MustParseIDs("Spade-1", "Spade-2", "Spade-3", "Spade-4")
	inPlay := deck.IDSet(deck.MustParseIDs("Spade-1", "Spade-3"))

	draw, err := TakeUnique(d, 2, inPlay, randutil.New(1))
	require.NoError(t, err)

	assert.Equal(t, deck.MustParseIDs("Spade-2", "Spade-4"), draw.Cards)
	assert.Empty(t, draw.Deck, "blocked cards are dropped, not returned")
	assert.Equal(t, 2, draw.Skipped)
}

func TestTakeUniqueNoDuplicatesWithinDraw(t *testing.T) {
	// A deck that repeats the same card must still yield distinct cards.
	d := deck.MustParseIDs("Moon-5", "Moon-5", "Moon-5", "Moon-6")

	draw, err := TakeUnique(d, 2, nil, randutil.New(1))
	require.NoError(t, err)

	assert.Equal(t, deck.MustParseIDs("Moon-5", "Moon-6"), draw.Cards)
	assert.Equal(t, 2, draw.Skipped)
}

func TestTakeUniqueRegeneratesWhenExhausted(t *testing.T) {
	d := deck.MustParseIDs("Sun-1")
	inPlay := deck.IDSet(deck.MustParseIDs("Sun-2", "Sun-3"))

	draw, err := TakeUnique(d, 3, inPlay, randutil.New(9))
	require.NoError(t, err)

	require.Len(t, draw.Cards, 3)
	assert.Equal(t, "Sun-1", draw.Cards[0].ID())
	assert.Equal(t, 1, draw.Regenerations)

	blocked := deck.IDSet(draw.Cards)
	for id := range inPlay {
		blocked[id] = struct{}{}
	}
	require.Len(t, blocked, 5, "drawn cards are distinct from each other and from inPlay")
	assert.Len(t, draw.Deck, deck.Size-5)
	for _, c := range draw.Deck {
		_, dup := blocked[c.ID()]
		assert.False(t, dup, "regenerated deck must exclude %s", c)
	}
}

func TestTakeUniqueRegeneratesAfterUnproductiveStreak(t *testing.T) {
	// Every card in the deck is in play; the streak cap forces a rebuild.
	all := deck.Canonical()
	inPlay := deck.IDSet(all[:10])
	d := make([]deck.Card, 0, MaxUnproductiveDraws+5)
	for len(d) < MaxUnproductiveDraws+5 {
		d = append(d, all[len(d)%10])
	}

	draw, err := TakeUnique(d, 2, inPlay, randutil.New(4))
	require.NoError(t, err)

	require.Len(t, draw.Cards, 2)
	assert.Equal(t, 1, draw.Regenerations)
	assert.Equal(t, MaxUnproductiveDraws, draw.Skipped)
	for _, c := range draw.Cards {
		_, dup := inPlay[c.ID()]
		assert.False(t, dup)
	}
}

func TestTakeUniqueUniverseExhausted(t *testing.T) {
	all := deck.Canonical()
	inPlay := deck.IDSet(all[:deck.Size-1])

	_, err := TakeUnique(nil, 2, inPlay, randutil.New(1))
	assert.ErrorIs(t, err, ErrUniverseExhausted)

	draw, err := TakeUnique(nil, 1, inPlay, randutil.New(1))
	require.NoError(t, err)
	assert.Equal(t, all[deck.Size-1], draw.Cards[0])
}

func TestTakeUniqueZero(t *testing.T) {
	d := deck.Canonical()
	draw, err := TakeUnique(d, 0, nil, randutil.New(1))
	require.NoError(t, err)
	assert.Empty(t, draw.Cards)
	assert.Equal(t, d, draw.Deck)
}

func TestTakeUniqueDoesNotMutateDeck(t *testing.T) {
	d := deck.NewShuffled(randutil.New(3))
	before := deck.Clone(d)

	_, err := TakeUnique(d, 5, nil, randutil.New(4))
	require.NoError(t, err)

	assert.Equal(t, before, d)
}
