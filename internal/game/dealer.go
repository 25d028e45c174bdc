package game

import (
	"fmt"

	"github.com/lox/starjack/internal/deck"
)

// Outcome is the result of a resolved hand from the player's side
type Outcome string

const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
	Push Outcome = "push"
)

// Delta returns the bankroll change for a hand played at bet
func (o Outcome) Delta(bet int) int {
	switch o {
	case Win:
		return bet
	case Lose:
		return -bet
	default:
		return 0
	}
}

// Resolve decides a hand that reached the dealer. Rules apply in order:
//
//  1. After a dealt bust the player wins only if the dealer busts too; the
//     player's total is never compared.
//  2. A dealer bust wins for the player.
//  3. Otherwise the higher total wins and equal totals push.
func Resolve(player, dealer []deck.Card, dealtBust bool) Outcome {
	if dealtBust {
		if IsBust(dealer) {
			return Win
		}
		return Lose
	}
	if IsBust(dealer) {
		return Win
	}
	p, d := deck.TotalHundredths(player), deck.TotalHundredths(dealer)
	switch {
	case p > d:
		return Win
	case p < d:
		return Lose
	default:
		return Push
	}
}

// dealerPlay tops the dealer up to two cards, draws while the total is
// under 17 and settles the bet. s must be in PhaseDealer.
func (e *Engine) dealerPlay(s State) State {
	if missing := 2 - len(s.DealerHand); missing > 0 {
		if drawn, ok := e.takeUnique(&s, missing); ok {
			s.DealerHand = append(s.DealerHand, drawn...)
		}
	}

	draws := 0
	for deck.TotalHundredths(s.DealerHand) < dealerStandAt {
		if draws >= e.maxDealerDraws {
			e.logger.Error("Dealer draw cap reached", "draws", draws, "total", s.DealerTotal())
			break
		}
		drawn, ok := e.takeUnique(&s, 1)
		if !ok {
			break
		}
		s.DealerHand = append(s.DealerHand, drawn...)
		draws++
	}

	outcome := Resolve(s.PlayerHand, s.DealerHand, s.PlayerInitialBust)
	delta := outcome.Delta(s.Bet)
	s.Bankroll += delta
	s.Phase = PhaseDone
	s.Message = outcomeMessage(s, outcome)

	e.logger.Debug("Hand resolved",
		"outcome", outcome,
		"player", s.PlayerTotal(),
		"dealer", s.DealerTotal(),
		"dealt_bust", s.PlayerInitialBust,
		"delta", delta)

	return e.record(s, string(DealerPlay), fmt.Sprintf("dealer %.2f after %d draws, player %.2f, %s %+d",
		s.DealerTotal(), draws, s.PlayerTotal(), outcome, delta))
}

func outcomeMessage(s State, o Outcome) string {
	dealerBust := IsBust(s.DealerHand)
	switch {
	case o == Win && dealerBust:
		return fmt.Sprintf("Dealer busts at %.2f. You win %d.", s.DealerTotal(), s.Bet)
	case o == Win:
		return fmt.Sprintf("%.2f beats %.2f. You win %d.", s.PlayerTotal(), s.DealerTotal(), s.Bet)
	case o == Lose && s.PlayerInitialBust:
		return fmt.Sprintf("Dealer stands at %.2f after your dealt bust. You lose %d.", s.DealerTotal(), s.Bet)
	case o == Lose:
		return fmt.Sprintf("Dealer %.2f beats %.2f. You lose %d.", s.DealerTotal(), s.PlayerTotal(), s.Bet)
	default:
		return fmt.Sprintf("Push at %.2f.", s.PlayerTotal())
	}
}
