package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/starjack/internal/randutil"
)

// EngineOption configures an Engine during creation.
type EngineOption func(*engineConfig)

type engineConfig struct {
	rng    *rand.Rand   // Default: randutil.Secure()
	clock  quartz.Clock // Default: real clock
	logger *log.Logger  // Default: discards everything
}

// WithRNG sets the random source used for shuffles and seeds.
// Tests pass randutil.New(seed) to make every shuffle reproducible.
func WithRNG(rng *rand.Rand) EngineOption {
	return func(cfg *engineConfig) {
		cfg.rng = rng
	}
}

// WithClock sets the clock used to timestamp audit entries.
func WithClock(clock quartz.Clock) EngineOption {
	return func(cfg *engineConfig) {
		cfg.clock = clock
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *log.Logger) EngineOption {
	return func(cfg *engineConfig) {
		cfg.logger = logger
	}
}

func newEngineConfig(opts []EngineOption) *engineConfig {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = randutil.Secure()
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return cfg
}
