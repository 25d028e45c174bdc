package soak

import (
	"errors"
	"fmt"

	"github.com/lox/starjack/internal/deck"
	"github.com/lox/starjack/internal/game"
)

var (
	errBetChanged    = errors.New("bet changed outside the lobby")
	errDrawAfterBust = errors.New("draw accepted after a dealt bust")
	errDealerStopped = errors.New("dealer stopped below 17")
	errBadDelta      = errors.New("bankroll delta is not +bet, -bet or 0")
	errBankrollMoved = errors.New("bankroll changed without a resolved hand")
)

// checkTransition verifies the invariants that must hold between prev and
// next when a was applied.
func checkTransition(prev, next game.State, a game.Action) error {
	if err := game.CheckInvariants(next); err != nil {
		return err
	}
	if a.Kind == game.ResetRun {
		return nil
	}

	switch a.Kind {
	case game.BetAdd, game.ResetBet, game.BetPlaceCTA:
		if prev.Phase != game.PhaseLobby && next.Bet != prev.Bet {
			return fmt.Errorf("%w: %d -> %d in %s", errBetChanged, prev.Bet, next.Bet, prev.Phase)
		}
	case game.Draw:
		if prev.PlayerInitialBust && len(next.PlayerHand) != len(prev.PlayerHand) {
			return errDrawAfterBust
		}
	}

	resolved := prev.Phase != game.PhaseDone && next.Phase == game.PhaseDone
	if resolved && (a.Kind == game.Stand || a.Kind == game.DealerPlay) && !game.DealerStood(next.DealerHand) {
		return fmt.Errorf("%w: %.2f", errDealerStopped, deck.Total(next.DealerHand))
	}

	delta := next.Bankroll - prev.Bankroll
	switch {
	case !resolved && delta != 0:
		return fmt.Errorf("%w: %+d", errBankrollMoved, delta)
	case resolved && delta != 0 && delta != prev.Bet && delta != -prev.Bet:
		return fmt.Errorf("%w: %+d at bet %d", errBadDelta, delta, prev.Bet)
	}
	return nil
}
