// Package export builds the JSON payload of a session, validates it against
// the embedded schema and writes it to disk.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lox/starjack/internal/audit"
	"github.com/lox/starjack/internal/deck"
	"github.com/lox/starjack/internal/fileutil"
	"github.com/lox/starjack/internal/game"
)

// Version tags the payload format.
const Version = "starjack.export/v1"

// Payload is the exportable record of a session.
type Payload struct {
	Version   string      `json:"version"`
	CreatedAt time.Time   `json:"createdAt"`
	State     State       `json:"state"`
	Log       audit.Trail `json:"log"`
}

// State is the exported part of a game state. The deck itself is not
// exported, only its size.
type State struct {
	Seed              uint32      `json:"seed"`
	Phase             game.Phase  `json:"phase"`
	DeckCount         int         `json:"deckCount"`
	Bankroll          int         `json:"bankroll"`
	Bet               int         `json:"bet"`
	PlayerHand        []deck.Card `json:"playerHand"`
	DealerHand        []deck.Card `json:"dealerHand"`
	PlayerInitialBust bool        `json:"playerInitialBust"`
	Message           string      `json:"message"`
}

// Build creates the payload for s. The payload holds copies and stays valid
// after s is replaced.
func Build(s game.State, createdAt time.Time) Payload {
	return Payload{
		Version:   Version,
		CreatedAt: createdAt.UTC(),
		State: State{
			Seed:              s.Seed,
			Phase:             s.Phase,
			DeckCount:         len(s.Deck),
			Bankroll:          s.Bankroll,
			Bet:               s.Bet,
			PlayerHand:        deck.Clone(s.PlayerHand),
			DealerHand:        deck.Clone(s.DealerHand),
			PlayerInitialBust: s.PlayerInitialBust,
			Message:           s.Message,
		},
		Log: s.Log.Clone(),
	}
}

// Marshal encodes p as indented JSON and checks the result against the schema.
func Marshal(p Payload) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	v, err := defaultValidator()
	if err != nil {
		return nil, err
	}
	if err := v.Validate(data); err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode validates data against the schema and decodes it.
func Decode(data []byte) (Payload, error) {
	v, err := defaultValidator()
	if err != nil {
		return Payload{}, err
	}
	if err := v.Validate(data); err != nil {
		return Payload{}, err
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}

// WriteFile writes p to path atomically after validating it.
func WriteFile(path string, p Payload) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	return nil
}

// ReadFile reads and validates an export file.
func ReadFile(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, fmt.Errorf("read export: %w", err)
	}
	p, err := Decode(data)
	if err != nil {
		return Payload{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
