package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"starjack.hcl" help:"Path to the HCL config file"`
	LogLevel string `name:"log-level" help:"Override the configured log level (debug, info, warn, error)"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play an interactive session on stdin/stdout"`
	Soak     SoakCmd          `cmd:"" help:"Drive many random sessions and check invariants"`
	Validate ValidateCmd      `cmd:"" help:"Validate session export files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("starjack"),
		kong.Description("Single-player card game engine with an auditable session log"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
