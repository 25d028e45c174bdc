package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/starjack/internal/game"
	"github.com/lox/starjack/internal/randutil"
	"github.com/lox/starjack/internal/session"
)

// PlayCmd runs an interactive session
type PlayCmd struct {
	ExportDir string `name:"export-dir" help:"Directory for export files (overrides config)"`
	Seed      *int64 `help:"Deterministic RNG seed (optional)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := load(g, os.Stderr)
	if err != nil {
		return err
	}
	exportDir := cfg.Session.ExportDir
	if c.ExportDir != "" {
		exportDir = c.ExportDir
	}

	sess, err := session.New(newEngine(c.Seed, logger), session.WithLogger(logger))
	if err != nil {
		return err
	}
	return repl(os.Stdin, os.Stdout, sess, exportDir)
}

func newEngine(seed *int64, logger *log.Logger) *game.Engine {
	opts := []game.EngineOption{game.WithLogger(logger)}
	if seed != nil {
		logger.Info("Using deterministic seed", "seed", *seed)
		opts = append(opts, game.WithRNG(randutil.New(*seed)))
	}
	return game.NewEngine(opts...)
}

const helpText = `Actions:
  bet N        add N to the bet (lobby only)
  reset-bet    clear the bet
  place        place the default bet if none is set
  start        deal a hand
  draw [1|2]   draw one or two cards
  stand        stand and let the dealer play
  dealer       run dealer play
  next         clear the table for the next hand
  shuffle      reshuffle the deck
  reset        start a new run
Other:
  state        show the table
  log [N]      show the last N audit entries (default 10)
  export [F]   write the session export to F or the export directory
  help         show this help
  quit         leave`

// repl reads one command per line from in until EOF or quit.
func repl(in io.Reader, out io.Writer, sess *session.Session, exportDir string) error {
	fmt.Fprintf(out, "starjack session %s\n", sess.ID())
	render(out, sess.Summary())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprintln(out, helpText)
		case "state":
			render(out, sess.Summary())
		case "log":
			n := 10
			if len(fields) > 1 {
				if _, err := fmt.Sscanf(fields[1], "%d", &n); err != nil {
					fmt.Fprintf(out, "invalid count %q\n", fields[1])
					continue
				}
			}
			renderLog(out, sess.Summary().Log, n)
		case "export":
			path := ""
			if len(fields) > 1 {
				path = fields[1]
			}
			written, err := sess.ExportTo(exportDir, path)
			if err != nil {
				fmt.Fprintf(out, "export failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "exported to %s\n", written)
		default:
			a, err := game.ParseAction(line)
			if err != nil {
				fmt.Fprintf(out, "%v (type help for commands)\n", err)
				continue
			}
			render(out, sess.Dispatch(a))
		}
	}
}
