package main

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/starjack/cmd/starjack/shared"
	"github.com/lox/starjack/internal/config"
)

// load reads the config named by the globals and builds the logger.
func load(g *Globals, logOut io.Writer) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	logger, err := shared.SetupLogger(logOut, cfg.Log, g.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
