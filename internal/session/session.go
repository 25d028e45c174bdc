// Package session hosts one game for its lifetime. A Session owns the current
// state value, replaces it on every dispatched action and serializes access
// to the engine, which is not safe for concurrent use.
package session

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/starjack/internal/export"
	"github.com/lox/starjack/internal/game"
	"github.com/lox/starjack/internal/sessionid"
)

// Session is a single-player game session.
type Session struct {
	mu sync.Mutex

	id      string
	started time.Time
	engine  *game.Engine
	state   game.State
	clock   quartz.Clock
	logger  *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The session adds its id as a prefix field.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock sets the clock used for the session id and export timestamps.
// It should be the same clock the engine stamps audit entries with.
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// New starts a session on engine.
func New(engine *game.Engine, opts ...Option) (*Session, error) {
	s := &Session{engine: engine}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	id, err := sessionid.NewGenerator(s.clock, nil).New()
	if err != nil {
		return nil, fmt.Errorf("create session id: %w", err)
	}
	s.id = id
	s.started = s.clock.Now()
	s.logger = s.logger.With("session", id)
	s.state = engine.NewState()

	s.logger.Info("Session started", "seed", s.state.Seed, "bankroll", s.state.Bankroll)
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Started returns when the session was created.
func (s *Session) Started() time.Time {
	return s.started
}

// Dispatch applies a to the current state, replaces it and returns the new
// summary.
func (s *Session) Dispatch(a game.Action) game.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state = s.engine.Apply(prev, a)

	if last, ok := s.state.Log.Last(); ok && last.Blocked() {
		s.logger.Debug("Action blocked", "action", a, "reason", s.state.Message)
	} else {
		s.logger.Info("Action applied",
			"action", a,
			"phase", s.state.Phase,
			"bankroll", s.state.Bankroll,
			"bet", s.state.Bet)
	}
	if s.state.Phase == game.PhaseDone && prev.Phase != game.PhaseDone {
		s.logger.Info("Hand resolved",
			"player", s.state.PlayerTotal(),
			"dealer", s.state.DealerTotal(),
			"bankroll_delta", s.state.Bankroll-prev.Bankroll)
	}

	return game.Summarize(s.state)
}

// State returns a deep copy of the current state.
func (s *Session) State() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Summary returns the read-only view of the current state.
func (s *Session) Summary() game.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return game.Summarize(s.state)
}

// Export builds the export payload of the current state.
func (s *Session) Export() export.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return export.Build(s.state, s.clock.Now())
}

// FileName is the default export file name for the session.
func (s *Session) FileName() string {
	return "starjack-" + s.id + ".json"
}

// ExportTo writes the payload to path. An empty path writes FileName into
// dir. It returns the path written.
func (s *Session) ExportTo(dir, path string) (string, error) {
	if path == "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create export directory: %w", err)
		}
		path = filepath.Join(dir, s.FileName())
	}
	if err := export.WriteFile(path, s.Export()); err != nil {
		return "", err
	}
	s.logger.Info("Session exported", "path", path)
	return path, nil
}
