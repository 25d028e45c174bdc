package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/starjack/internal/export"
)

// ValidateCmd checks export files against the schema
type ValidateCmd struct {
	Files []string `arg:"" name:"file" help:"Export files to validate"`
}

func (c *ValidateCmd) Run() error {
	return validateFiles(os.Stdout, c.Files)
}

func validateFiles(out io.Writer, files []string) error {
	failed := 0
	for _, file := range files {
		p, err := export.ReadFile(file)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %v\n", err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%s, bankroll %d, %d log entries)\n", file, p.State.Phase, p.State.Bankroll, len(p.Log))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(files))
	}
	return nil
}
