package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/starjack/internal/audit"
	"github.com/lox/starjack/internal/game"
)

func render(out io.Writer, s game.Summary) {
	fmt.Fprintf(out, "[%s] bankroll %d  bet %d  deck %d\n", s.Phase, s.Bankroll, s.Bet, s.DeckSize)
	if len(s.Player) > 0 || len(s.Dealer) > 0 {
		fmt.Fprintf(out, "  you:    %-40s %.2f\n", strings.Join(s.Player, " "), s.PlayerTotal)
		if s.Phase == game.PhasePlayer && len(s.Dealer) > 1 {
			// Only the up-card is shown during the player's turn.
			fmt.Fprintf(out, "  dealer: %-40s\n", s.Dealer[0]+" ??")
		} else {
			fmt.Fprintf(out, "  dealer: %-40s %.2f\n", strings.Join(s.Dealer, " "), s.DealerTotal)
		}
	}
	if s.Message != "" {
		fmt.Fprintf(out, "  %s\n", s.Message)
	}
}

func renderLog(out io.Writer, trail audit.Trail, n int) {
	if n <= 0 || n > len(trail) {
		n = len(trail)
	}
	for _, e := range trail[len(trail)-n:] {
		fmt.Fprintf(out, "%s  %-20s %s\n", e.Timestamp.Format("15:04:05.000"), e.Kind, e.Note)
	}
}
