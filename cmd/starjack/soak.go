package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/starjack/cmd/starjack/shared"
	"github.com/lox/starjack/internal/soak"
)

// SoakCmd drives random sessions concurrently
type SoakCmd struct {
	Sessions int    `help:"Number of sessions (overrides config)"`
	Actions  int    `help:"Actions per session (overrides config)"`
	Workers  int    `help:"Concurrent workers (overrides config)"`
	Seed     *int64 `help:"Base seed; session i uses seed+i (overrides config)"`
}

func (c *SoakCmd) Run(g *Globals) error {
	cfg, logger, err := load(g, os.Stderr)
	if err != nil {
		return err
	}

	run := soak.Config{
		Sessions: pick(c.Sessions, cfg.Soak.Sessions),
		Actions:  pick(c.Actions, cfg.Soak.Actions),
		Workers:  pick(c.Workers, cfg.Soak.Workers),
		Seed:     cfg.Soak.Seed,
	}
	if c.Seed != nil {
		run.Seed = *c.Seed
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	logger.Info("Starting soak",
		"sessions", run.Sessions,
		"actions", run.Actions,
		"workers", run.Workers,
		"seed", run.Seed)

	res, err := soak.Run(ctx, run, logger)
	if err != nil {
		return fmt.Errorf("soak failed: %w", err)
	}
	printSoak(os.Stdout, res)
	return nil
}

func pick(flag, configured int) int {
	if flag > 0 {
		return flag
	}
	return configured
}

func printSoak(out io.Writer, r soak.Result) {
	fmt.Fprintf(out, "sessions   %d\n", r.Sessions)
	fmt.Fprintf(out, "actions    %d (%d blocked, %d resets)\n", r.Actions, r.Blocked, r.Resets)
	fmt.Fprintf(out, "hands      %d (win %d, lose %d, push %d, dealt bust %d)\n",
		r.Hands, r.Wins, r.Losses, r.Pushes, r.DealtBusts)
	if r.Delta.N > 0 {
		fmt.Fprintf(out, "delta/bet  %+.4f ± %.4f (95%% CI %+.4f .. %+.4f)\n",
			r.Delta.Mean, r.Delta.StdDev, r.Delta.CI95Low, r.Delta.CI95High)
	}
	fmt.Fprintf(out, "duration   %s\n", r.Duration)
	fmt.Fprintln(out, "invariants held")
}
