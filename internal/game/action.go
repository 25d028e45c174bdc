package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionKind names an action. The string value is also the audit kind.
type ActionKind string

const (
	ResetRun    ActionKind = "RESET_RUN"
	Shuffle     ActionKind = "SHUFFLE"
	BetAdd      ActionKind = "BET_ADD"
	ResetBet    ActionKind = "RESET_BET"
	BetPlaceCTA ActionKind = "BET_PLACE_CTA"
	Start       ActionKind = "START"
	Draw        ActionKind = "DRAW"
	Stand       ActionKind = "STAND"
	DealerPlay  ActionKind = "DEALER_PLAY"
	NextHand    ActionKind = "NEXT_HAND"
)

// ActionKinds lists every action kind
var ActionKinds = []ActionKind{
	ResetRun, Shuffle, BetAdd, ResetBet, BetPlaceCTA, Start, Draw, Stand, DealerPlay, NextHand,
}

// Action is a request submitted to the engine. Amount is the bet increment
// for BET_ADD and the card count for DRAW; other kinds ignore it.
type Action struct {
	Kind   ActionKind
	Amount int
}

// BetAddAction adds inc to the bet
func BetAddAction(inc int) Action {
	return Action{Kind: BetAdd, Amount: inc}
}

// DrawAction draws n cards for the player
func DrawAction(n int) Action {
	return Action{Kind: Draw, Amount: n}
}

func (a Action) String() string {
	switch a.Kind {
	case BetAdd, Draw:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Amount)
	default:
		return string(a.Kind)
	}
}

// ParseAction converts a command line such as "bet 10" or "draw 2" to an
// Action. Kind names ("BET_ADD 10") are accepted as well.
func ParseAction(input string) (Action, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("empty action")
	}

	amount := func(def int) (int, error) {
		if len(fields) < 2 {
			return def, nil
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", fields[1], err)
		}
		return n, nil
	}

	switch fields[0] {
	case "reset", "reset_run":
		return Action{Kind: ResetRun}, nil
	case "shuffle":
		return Action{Kind: Shuffle}, nil
	case "bet", "bet_add":
		if len(fields) < 2 {
			return Action{}, fmt.Errorf("bet requires an amount")
		}
		n, err := amount(0)
		if err != nil {
			return Action{}, err
		}
		return BetAddAction(n), nil
	case "reset-bet", "reset_bet":
		return Action{Kind: ResetBet}, nil
	case "place", "bet_place_cta":
		return Action{Kind: BetPlaceCTA}, nil
	case "start", "deal":
		return Action{Kind: Start}, nil
	case "draw", "hit":
		n, err := amount(1)
		if err != nil {
			return Action{}, err
		}
		return DrawAction(n), nil
	case "stand":
		return Action{Kind: Stand}, nil
	case "dealer", "dealer_play":
		return Action{Kind: DealerPlay}, nil
	case "next", "next_hand":
		return Action{Kind: NextHand}, nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", fields[0])
	}
}
