// Package audit records the append-only history of engine transitions.
//
// A Trail is a value: Append returns a new trail and never touches the
// receiver's backing array, so a state holding a trail can be shared freely.
// The trail keeps at most Capacity entries and drops the oldest first.
package audit

import (
	"strings"
	"time"

	"github.com/coder/quartz"
)

// Capacity is the maximum number of entries a Trail retains.
const Capacity = 200

const blockedSuffix = "_BLOCKED"

// Snapshot is a read-only summary of the game state at the time of an entry.
type Snapshot struct {
	Seed              uint32   `json:"seed"`
	Phase             string   `json:"phase"`
	DeckCount         int      `json:"deckCount"`
	Bankroll          int      `json:"bankroll"`
	Bet               int      `json:"bet"`
	Player            []string `json:"player"`
	Dealer            []string `json:"dealer"`
	PlayerTotal       float64  `json:"playerTotal"`
	DealerTotal       float64  `json:"dealerTotal"`
	PlayerInitialBust bool     `json:"playerInitialBust"`
	Message           string   `json:"message"`
}

// Entry is one audit record.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	Note      string    `json:"note"`
	Snapshot  Snapshot  `json:"snapshot"`
}

// Blocked reports whether the entry records a rejected transition.
func (e Entry) Blocked() bool {
	return IsBlocked(e.Kind)
}

// BlockedKind returns the audit kind used when an action of the given kind is rejected.
func BlockedKind(kind string) string {
	return kind + blockedSuffix
}

// IsBlocked reports whether kind is a rejection kind.
func IsBlocked(kind string) bool {
	return strings.HasSuffix(kind, blockedSuffix)
}

// Trail is a bounded, ordered sequence of entries, oldest first.
type Trail []Entry

// Append returns a new trail with e added at the end, dropping the oldest
// entries beyond Capacity.
func (t Trail) Append(e Entry) Trail {
	start := 0
	if len(t)+1 > Capacity {
		start = len(t) + 1 - Capacity
	}
	out := make(Trail, 0, len(t)-start+1)
	out = append(out, t[start:]...)
	return append(out, e)
}

// Last returns the most recent entry.
func (t Trail) Last() (Entry, bool) {
	if len(t) == 0 {
		return Entry{}, false
	}
	return t[len(t)-1], true
}

// Kinds lists entry kinds in order.
func (t Trail) Kinds() []string {
	kinds := make([]string, len(t))
	for i, e := range t {
		kinds[i] = e.Kind
	}
	return kinds
}

// Clone returns a copy that shares no backing array with t.
func (t Trail) Clone() Trail {
	out := make(Trail, len(t))
	copy(out, t)
	return out
}

// Recorder stamps entries with the time from its clock.
type Recorder struct {
	clock quartz.Clock
}

// NewRecorder creates a recorder. A nil clock uses the real wall clock.
func NewRecorder(clock quartz.Clock) *Recorder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Recorder{clock: clock}
}

// Record appends a timestamped entry to t and returns the new trail.
func (r *Recorder) Record(t Trail, kind, note string, snap Snapshot) Trail {
	return t.Append(Entry{
		Timestamp: r.clock.Now(),
		Kind:      kind,
		Note:      note,
		Snapshot:  snap,
	})
}
