package deck

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit. The numeric value doubles as the suit's rank.
type Suit int

const (
	Spade Suit = iota + 1
	Heart
	Diamond
	Club
	Moon
	Sun
	Star
)

// Suits lists every suit in enumeration order.
var Suits = [...]Suit{Spade, Heart, Diamond, Club, Moon, Sun, Star}

const (
	// MinValue and MaxValue bound the face value of a card.
	MinValue = 1
	MaxValue = 11

	// Size is the number of cards in the canonical universe.
	Size = len(Suits) * (MaxValue - MinValue + 1)
)

// String returns the suit name used in card ids
func (s Suit) String() string {
	switch s {
	case Spade:
		return "Spade"
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	case Club:
		return "Club"
	case Moon:
		return "Moon"
	case Sun:
		return "Sun"
	case Star:
		return "Star"
	default:
		return "?"
	}
}

// Rank returns the tie-breaking rank of the suit (1-7)
func (s Suit) Rank() int {
	return int(s)
}

// Valid reports whether s is one of the seven suits
func (s Suit) Valid() bool {
	return s >= Spade && s <= Star
}

// ParseSuit converts a suit name back to a Suit
func ParseSuit(name string) (Suit, error) {
	for _, s := range Suits {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("invalid suit %q", name)
}

// Card represents a playing card
type Card struct {
	Suit  Suit
	Value int
}

// NewCard creates a new card
func NewCard(suit Suit, value int) Card {
	return Card{Suit: suit, Value: value}
}

// ID returns the globally unique identity of the card (e.g. "Spade-11")
func (c Card) ID() string {
	return c.Suit.String() + "-" + strconv.Itoa(c.Value)
}

// String returns the card id
func (c Card) String() string {
	return c.ID()
}

// Valid reports whether the card belongs to the canonical universe
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Value >= MinValue && c.Value <= MaxValue
}

// Hundredths returns the card score scaled by 100: value*100 + suit rank.
// Totals are summed in this unit so they never accumulate float error.
func (c Card) Hundredths() int {
	return c.Value*100 + c.Suit.Rank()
}

// Score returns value + rank/100, e.g. 11.01 for Spade-11
func (c Card) Score() float64 {
	return float64(c.Hundredths()) / 100
}

// ParseID parses a card id of the form "<Suit>-<value>"
func ParseID(id string) (Card, error) {
	name, num, ok := strings.Cut(id, "-")
	if !ok {
		return Card{}, fmt.Errorf("invalid card id %q: missing separator", id)
	}
	suit, err := ParseSuit(name)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card id %q: %w", id, err)
	}
	value, err := strconv.Atoi(num)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card id %q: %w", id, err)
	}
	c := NewCard(suit, value)
	if !c.Valid() {
		return Card{}, fmt.Errorf("invalid card id %q: value out of range", id)
	}
	return c, nil
}

// MustParseID is like ParseID but panics on error. Intended for tests.
func MustParseID(id string) Card {
	c, err := ParseID(id)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseIDs parses a list of card ids, panicking on the first bad one
func MustParseIDs(ids ...string) []Card {
	cards := make([]Card, len(ids))
	for i, id := range ids {
		cards[i] = MustParseID(id)
	}
	return cards
}

type cardRecord struct {
	ID    string  `json:"id"`
	Suit  string  `json:"suit"`
	Value int     `json:"value"`
	Score float64 `json:"score"`
}

// MarshalJSON encodes a card as a full record
func (c Card) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid card: suit %d value %d", c.Suit, c.Value)
	}
	return json.Marshal(cardRecord{
		ID:    c.ID(),
		Suit:  c.Suit.String(),
		Value: c.Value,
		Score: c.Score(),
	})
}

// UnmarshalJSON decodes a card record. The id is authoritative.
func (c *Card) UnmarshalJSON(b []byte) error {
	var rec cardRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	parsed, err := ParseID(rec.ID)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
