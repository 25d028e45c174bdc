// Package soak drives many independent sessions with random actions and
// checks the engine invariants after every transition.
package soak

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/starjack/internal/game"
	"github.com/lox/starjack/internal/randutil"
)

// Config controls a soak run.
type Config struct {
	Sessions int
	Actions  int
	Workers  int
	Seed     int64
}

// Result aggregates every session of a run.
type Result struct {
	Sessions   int
	Actions    int
	Hands      int
	Wins       int
	Losses     int
	Pushes     int
	DealtBusts int
	Blocked    int
	Resets     int

	// Bankroll change per hand in units of the bet.
	Delta    Stats
	Duration time.Duration
}

// sessionResult is what one session contributes to a Result.
type sessionResult struct {
	actions    int
	wins       int
	losses     int
	pushes     int
	dealtBusts int
	blocked    int
	resets     int
	deltas     []float64
}

// Run executes the soak. It stops at the first invariant violation and
// returns it as an error.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (Result, error) {
	if cfg.Sessions < 1 || cfg.Actions < 1 || cfg.Workers < 1 {
		return Result{}, fmt.Errorf("invalid soak config: %+v", cfg)
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	start := time.Now()
	results := make([]sessionResult, cfg.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := 0; i < cfg.Sessions; i++ {
		seed := cfg.Seed + int64(i)
		g.Go(func() error {
			r, err := runSession(ctx, seed, cfg.Actions, logger)
			if err != nil {
				return fmt.Errorf("session %d (seed %d): %w", i, seed, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Sessions: cfg.Sessions}
	var deltas []float64
	for _, r := range results {
		res.Actions += r.actions
		res.Wins += r.wins
		res.Losses += r.losses
		res.Pushes += r.pushes
		res.DealtBusts += r.dealtBusts
		res.Blocked += r.blocked
		res.Resets += r.resets
		deltas = append(deltas, r.deltas...)
	}
	res.Hands = res.Wins + res.Losses + res.Pushes
	res.Delta = computeStats(deltas)
	res.Duration = time.Since(start)

	logger.Info("Soak finished",
		"sessions", res.Sessions,
		"actions", res.Actions,
		"hands", res.Hands,
		"blocked", res.Blocked,
		"duration", res.Duration)
	return res, nil
}

func runSession(ctx context.Context, seed int64, actions int, logger *log.Logger) (sessionResult, error) {
	engine := game.NewEngine(
		game.WithRNG(randutil.New(seed)),
		game.WithLogger(logger.With("soak_seed", seed)),
	)
	// Actions come from a separate stream so they do not shift the deck.
	picker := randutil.New(seed + 1<<32)

	var r sessionResult
	s := engine.NewState()
	if err := game.CheckInvariants(s); err != nil {
		return r, fmt.Errorf("initial state: %w", err)
	}

	for step := 0; step < actions; step++ {
		if step%64 == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}

		a := randomAction(picker)
		next := engine.Apply(s, a)
		if err := checkTransition(s, next, a); err != nil {
			return r, fmt.Errorf("step %d %s: %w", step, a, err)
		}
		r.record(s, next, a)
		s = next
	}
	return r, nil
}

func (r *sessionResult) record(prev, next game.State, a game.Action) {
	r.actions++
	if last, ok := next.Log.Last(); ok && last.Blocked() {
		r.blocked++
		return
	}
	switch {
	case a.Kind == game.ResetRun:
		r.resets++
	case a.Kind == game.Start && next.PlayerInitialBust:
		r.dealtBusts++
	}
	if prev.Phase == game.PhaseDone || next.Phase != game.PhaseDone || a.Kind == game.ResetRun {
		return
	}

	delta := next.Bankroll - prev.Bankroll
	switch {
	case delta > 0:
		r.wins++
	case delta < 0:
		r.losses++
	default:
		r.pushes++
	}
	r.deltas = append(r.deltas, float64(delta)/float64(prev.Bet))
}

// randomAction picks any action kind, legal or not. Amounts include values
// the engine must clamp or reject.
func randomAction(rng *rand.Rand) game.Action {
	kind := game.ActionKinds[rng.IntN(len(game.ActionKinds))]
	switch kind {
	case game.BetAdd:
		return game.BetAddAction(rng.IntN(71) - 10)
	case game.Draw:
		return game.DrawAction(rng.IntN(4))
	default:
		return game.Action{Kind: kind}
	}
}
