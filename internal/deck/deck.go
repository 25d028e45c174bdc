package deck

// Canonical builds the full 77-card universe in enumeration order:
// suits Spade..Star, each with values 1..11.
func Canonical() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for value := MinValue; value <= MaxValue; value++ {
			cards = append(cards, NewCard(suit, value))
		}
	}
	return cards
}

// CanonicalIDs returns the set of every canonical card id
func CanonicalIDs() map[string]struct{} {
	return IDSet(Canonical())
}

// TotalHundredths sums the scaled scores of the given cards
func TotalHundredths(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Hundredths()
	}
	return total
}

// Total returns the hand total rounded to two decimals
func Total(cards []Card) float64 {
	return float64(TotalHundredths(cards)) / 100
}

// IDs returns the ids of the cards in order
func IDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID()
	}
	return ids
}

// IDSet collects the ids of all given card groups into a set
func IDSet(groups ...[]Card) map[string]struct{} {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	set := make(map[string]struct{}, n)
	for _, g := range groups {
		for _, c := range g {
			set[c.ID()] = struct{}{}
		}
	}
	return set
}

// Clone returns a copy of cards that shares no backing array.
// A nil input yields an empty, non-nil slice.
func Clone(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
