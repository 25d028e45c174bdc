package session

import (
	"bytes"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/starjack/internal/export"
	"github.com/lox/starjack/internal/game"
	"github.com/lox/starjack/internal/randutil"
	"github.com/lox/starjack/internal/sessionid"
)

var epoch = time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) (*Session, *quartz.Mock, *bytes.Buffer) {
	t.Helper()
	clock := quartz.NewMock(t)
	clock.Set(epoch)
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	e := game.NewEngine(game.WithRNG(randutil.New(5)), game.WithClock(clock), game.WithLogger(logger))
	s, err := New(e, WithLogger(logger), WithClock(clock))
	require.NoError(t, err)
	return s, clock, &buf
}

func TestNew(t *testing.T) {
	s, _, buf := newTestSession(t)

	require.NoError(t, sessionid.Validate(s.ID()))
	at, err := sessionid.Time(s.ID())
	require.NoError(t, err)
	assert.True(t, epoch.Equal(at))
	assert.True(t, epoch.Equal(s.Started()))

	sum := s.Summary()
	assert.Equal(t, game.PhaseLobby, sum.Phase)
	assert.Equal(t, game.StartingBankroll, sum.Bankroll)
	assert.Equal(t, []string{game.InitKind}, sum.Log.Kinds())
	assert.Contains(t, buf.String(), "Session started")
	assert.Contains(t, buf.String(), s.ID())
}

func TestDispatchReplacesState(t *testing.T) {
	s, _, buf := newTestSession(t)

	sum := s.Dispatch(game.BetAddAction(15))
	assert.Equal(t, 15, sum.Bet)
	assert.Equal(t, 15, s.State().Bet)

	sum = s.Dispatch(game.Action{Kind: game.Start})
	assert.Equal(t, game.PhasePlayer, sum.Phase)
	assert.Len(t, sum.Player, 2)
	assert.Len(t, sum.Dealer, 2)

	sum = s.Dispatch(game.Action{Kind: game.Stand})
	assert.Equal(t, game.PhaseDone, sum.Phase)
	assert.Contains(t, []int{game.StartingBankroll - 15, game.StartingBankroll, game.StartingBankroll + 15}, sum.Bankroll)
	assert.Contains(t, buf.String(), "Hand resolved")

	require.NoError(t, game.CheckInvariants(s.State()))
}

func TestDispatchBlocked(t *testing.T) {
	s, _, buf := newTestSession(t)

	sum := s.Dispatch(game.Action{Kind: game.Stand})
	assert.Equal(t, game.PhaseLobby, sum.Phase)
	last, ok := sum.Log.Last()
	require.True(t, ok)
	assert.True(t, last.Blocked())
	assert.Contains(t, buf.String(), "Action blocked")
}

func TestStateIsACopy(t *testing.T) {
	s, _, _ := newTestSession(t)

	st := s.State()
	st.Deck = st.Deck[:0]
	st.Bankroll = 0

	assert.Equal(t, game.StartingBankroll, s.State().Bankroll)
	assert.NoError(t, game.CheckInvariants(s.State()))
}

func TestExport(t *testing.T) {
	s, clock, _ := newTestSession(t)
	s.Dispatch(game.BetAddAction(10))
	clock.Advance(time.Minute)

	p := s.Export()
	assert.Equal(t, export.Version, p.Version)
	assert.True(t, epoch.Add(time.Minute).Equal(p.CreatedAt))
	assert.Equal(t, 10, p.State.Bet)
	assert.Equal(t, []string{game.InitKind, string(game.BetAdd)}, p.Log.Kinds())
}

func TestExportTo(t *testing.T) {
	s, _, _ := newTestSession(t)
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := s.ExportTo(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, s.FileName()), path)
	assert.True(t, strings.HasPrefix(s.FileName(), "starjack-"))

	p, err := export.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.Summary().Seed, p.State.Seed)

	explicit := filepath.Join(t.TempDir(), "mine.json")
	path, err = s.ExportTo(dir, explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)
}

func TestConcurrentDispatch(t *testing.T) {
	s, _, _ := newTestSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Dispatch(game.Action{Kind: game.ActionKinds[(i+j)%len(game.ActionKinds)], Amount: 1})
				_ = s.Summary()
			}
		}()
	}
	wg.Wait()

	require.NoError(t, game.CheckInvariants(s.State()))
}
