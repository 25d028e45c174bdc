package shared

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/starjack/internal/config"
)

// SetupLogger builds the logger described by cfg. A non-empty levelOverride
// replaces the configured level.
func SetupLogger(w io.Writer, cfg *config.LogConfig, levelOverride string) (*log.Logger, error) {
	name := cfg.Level
	if levelOverride != "" {
		name = levelOverride
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	opts := log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}
	switch cfg.Format {
	case "", "text":
		opts.Formatter = log.TextFormatter
	case "json":
		opts.Formatter = log.JSONFormatter
		opts.TimeFormat = time.RFC3339Nano
	case "logfmt":
		opts.Formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return log.NewWithOptions(w, opts), nil
}
