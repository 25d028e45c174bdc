package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/starjack/internal/audit"
	"github.com/lox/starjack/internal/deck"
	"github.com/lox/starjack/internal/integrity"
	"github.com/lox/starjack/internal/randutil"
)

// InitKind is the audit kind of the entry written when a session starts.
const InitKind = "INIT"

// Engine computes state transitions. It owns the random source, so a single
// Engine must not be used from more than one goroutine at a time.
type Engine struct {
	rng      *rand.Rand
	recorder *audit.Recorder
	logger   *log.Logger

	maxDealerDraws int
}

// NewEngine creates an engine with a crypto-backed random source and the real
// clock unless options say otherwise.
func NewEngine(opts ...EngineOption) *Engine {
	cfg := newEngineConfig(opts)
	return &Engine{
		rng:      cfg.rng,
		recorder: audit.NewRecorder(cfg.clock),
		logger:   cfg.logger,

		maxDealerDraws: MaxDealerDraws,
	}
}

// NewState creates the state of a fresh session: new seed, shuffled
// canonical deck, full bankroll, LOBBY.
func (e *Engine) NewState() State {
	s := e.freshRun()
	return e.record(s, InitKind, fmt.Sprintf("session started, seed %d", s.Seed))
}

func (e *Engine) freshRun() State {
	seed := randutil.Seed(e.rng)
	return State{
		Seed:       seed,
		Phase:      PhaseLobby,
		Deck:       deck.NewShuffled(e.rng),
		PlayerHand: []deck.Card{},
		DealerHand: []deck.Card{},
		Bankroll:   StartingBankroll,
		Message:    "Place your bet.",
	}
}

// Apply returns the state that results from applying a to s. The input state
// is repaired first and never modified. Rejected actions leave every value
// except Message unchanged and append a "<KIND>_BLOCKED" audit entry.
func (e *Engine) Apply(s State, a Action) State {
	next := e.normalize(s)

	e.logger.Debug("Applying action", "action", a, "phase", next.Phase, "bet", next.Bet)

	switch a.Kind {
	case ResetRun:
		return e.resetRun()
	case Shuffle:
		return e.shuffle(next)
	case BetAdd:
		if next.Phase != PhaseLobby {
			return e.block(next, a, "Bets can only change in the lobby.")
		}
		next.Bet = clampBet(next.Bet + a.Amount)
		next.Message = fmt.Sprintf("Bet %d.", next.Bet)
		return e.record(next, string(a.Kind), fmt.Sprintf("added %d, bet %d", a.Amount, next.Bet))
	case ResetBet:
		if next.Phase != PhaseLobby {
			return e.block(next, a, "Bets can only change in the lobby.")
		}
		next.Bet = 0
		next.Message = "Bet cleared."
		return e.record(next, string(a.Kind), "bet 0")
	case BetPlaceCTA:
		if next.Phase != PhaseLobby {
			return e.block(next, a, "Bets can only change in the lobby.")
		}
		if next.Bet <= 0 {
			next.Bet = DefaultBet
		}
		next.Message = fmt.Sprintf("Bet %d. Start when ready.", next.Bet)
		return e.record(next, string(a.Kind), fmt.Sprintf("bet %d", next.Bet))
	case Start:
		return e.start(next, a)
	case Draw:
		return e.draw(next, a)
	case Stand:
		if next.Phase != PhasePlayer {
			return e.block(next, a, "You can only stand during your turn.")
		}
		next.Phase = PhaseDealer
		next.Message = "Dealer plays."
		next = e.record(next, string(a.Kind), fmt.Sprintf("player stands at %.2f", next.PlayerTotal()))
		return e.dealerPlay(next)
	case DealerPlay:
		if next.Phase != PhaseDealer {
			return e.block(next, a, "The dealer only plays after you stand.")
		}
		return e.dealerPlay(next)
	case NextHand:
		return e.nextHand(next, a)
	default:
		return e.block(next, a, fmt.Sprintf("Unknown action %q.", a.Kind))
	}
}

// normalize repairs the deck and hands and clamps out-of-range values before
// any rule looks at the state. The result shares no slices with s.
func (e *Engine) normalize(s State) State {
	res := integrity.Normalize(s.Deck, s.PlayerHand, s.DealerHand, e.rng)
	if res.Repaired() {
		e.logger.Warn("Repaired inconsistent cards",
			"hands_repaired", res.HandsRepaired,
			"deck_rebuilt", res.DeckRebuilt,
			"deck", len(res.Deck))
	}

	next := s
	next.Deck = res.Deck
	next.PlayerHand = res.Player
	next.DealerHand = res.Dealer

	if bet := clampBet(s.Bet); bet != s.Bet {
		e.logger.Warn("Clamped out-of-range bet", "bet", s.Bet, "clamped", bet)
		next.Bet = bet
	}
	if len(s.Log) > audit.Capacity {
		next.Log = s.Log[len(s.Log)-audit.Capacity:].Clone()
	}
	return next
}

func (e *Engine) record(s State, kind, note string) State {
	s.Log = e.recorder.Record(s.Log, kind, note, s.Snapshot())
	return s
}

func (e *Engine) block(s State, a Action, msg string) State {
	e.logger.Debug("Action blocked", "action", a, "phase", s.Phase, "reason", msg)
	s.Message = msg
	return e.record(s, audit.BlockedKind(string(a.Kind)), msg)
}

func (e *Engine) resetRun() State {
	s := e.freshRun()
	s.Message = "New run. Place your bet."
	return e.record(s, string(ResetRun), fmt.Sprintf("run reset, seed %d", s.Seed))
}

func (e *Engine) shuffle(s State) State {
	s.Deck = integrity.Rebuild(s.InPlay(), e.rng)
	s.Message = "Deck shuffled."
	return e.record(s, string(Shuffle), fmt.Sprintf("%d cards in deck", len(s.Deck)))
}

func (e *Engine) start(s State, a Action) State {
	if s.Phase != PhaseLobby {
		return e.block(s, a, "A hand is already in progress.")
	}
	if s.Bet <= 0 {
		return e.block(s, a, "Place a bet before starting.")
	}
	if s.Bet > s.Bankroll {
		return e.block(s, a, fmt.Sprintf("Bet %d exceeds bankroll %d.", s.Bet, s.Bankroll))
	}

	// Leftover cards in the lobby go back under the deck.
	s.Deck = append(s.Deck, s.PlayerHand...)
	s.Deck = append(s.Deck, s.DealerHand...)
	s.PlayerHand = []deck.Card{}
	s.DealerHand = []deck.Card{}

	drawn, ok := e.takeUnique(&s, 4)
	if !ok {
		return e.block(s, a, "Could not deal a hand.")
	}

	// Deal order alternates: player, dealer, player, dealer.
	s.PlayerHand = []deck.Card{drawn[0], drawn[2]}
	s.DealerHand = []deck.Card{drawn[1], drawn[3]}
	s.Phase = PhasePlayer

	if IsBust(s.PlayerHand) {
		s.PlayerInitialBust = true
		s.Message = fmt.Sprintf("Dealt bust at %.2f. Drawing is blocked; stand to let the dealer play.", s.PlayerTotal())
	} else {
		s.Message = fmt.Sprintf("You have %.2f. Draw or stand.", s.PlayerTotal())
	}

	return e.record(s, string(a.Kind), fmt.Sprintf("bet %d, player %.2f, dealer shows %s",
		s.Bet, s.PlayerTotal(), s.DealerHand[0]))
}

func (e *Engine) draw(s State, a Action) State {
	if s.Phase != PhasePlayer {
		return e.block(s, a, "You can only draw during your turn.")
	}
	if s.PlayerInitialBust {
		return e.block(s, a, "Dealt bust: drawing is blocked until the next hand.")
	}
	if a.Amount != 1 && a.Amount != 2 {
		return e.block(s, a, fmt.Sprintf("Draw 1 or 2 cards, not %d.", a.Amount))
	}

	drawn, ok := e.takeUnique(&s, a.Amount)
	if !ok {
		return e.block(s, a, "Could not draw.")
	}
	s.PlayerHand = append(s.PlayerHand, drawn...)

	if IsBust(s.PlayerHand) {
		s.Bankroll -= s.Bet
		s.Phase = PhaseDone
		s.Message = fmt.Sprintf("Bust at %.2f. You lose %d.", s.PlayerTotal(), s.Bet)
		return e.record(s, string(a.Kind), fmt.Sprintf("drew %d, bust at %.2f, %s -%d",
			a.Amount, s.PlayerTotal(), Lose, s.Bet))
	}

	s.Message = fmt.Sprintf("You have %.2f. Draw or stand.", s.PlayerTotal())
	return e.record(s, string(a.Kind), fmt.Sprintf("drew %d, player %.2f", a.Amount, s.PlayerTotal()))
}

func (e *Engine) nextHand(s State, a Action) State {
	if s.Phase != PhaseDone {
		return e.block(s, a, "Finish the current hand first.")
	}
	// Nothing is discarded: played cards return under the deck.
	s.Deck = append(s.Deck, s.PlayerHand...)
	s.Deck = append(s.Deck, s.DealerHand...)
	s.PlayerHand = []deck.Card{}
	s.DealerHand = []deck.Card{}
	s.Bet = 0
	s.PlayerInitialBust = false
	s.Phase = PhaseLobby
	s.Message = "Place your bet."
	return e.record(s, string(a.Kind), fmt.Sprintf("bankroll %d", s.Bankroll))
}

// takeUnique draws n cards not held in either hand and updates s.Deck.
// It reports false only when the safety valve in integrity.TakeUnique fires.
func (e *Engine) takeUnique(s *State, n int) ([]deck.Card, bool) {
	d, err := integrity.TakeUnique(s.Deck, n, s.InPlay(), e.rng)
	if err != nil {
		e.logger.Error("Unique draw failed", "error", err, "n", n, "deck", len(s.Deck))
		return nil, false
	}
	if d.Regenerations > 0 {
		e.logger.Warn("Deck regenerated during draw",
			"regenerations", d.Regenerations, "skipped", d.Skipped)
	}
	s.Deck = d.Deck
	return d.Cards, true
}
