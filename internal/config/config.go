// Package config loads the starjack HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "starjack.hcl"

// Config is the complete configuration. Every block is optional.
type Config struct {
	Log     *LogConfig     `hcl:"log,block"`
	Session *SessionConfig `hcl:"session,block"`
	Soak    *SoakConfig    `hcl:"soak,block"`
}

// LogConfig controls the structured logger
type LogConfig struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// SessionConfig controls interactive sessions
type SessionConfig struct {
	ExportDir string `hcl:"export_dir,optional"`
}

// SoakConfig controls the soak harness
type SoakConfig struct {
	Sessions int   `hcl:"sessions,optional"`
	Actions  int   `hcl:"actions,optional"`
	Workers  int   `hcl:"workers,optional"`
	Seed     int64 `hcl:"seed,optional"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json", "logfmt"}
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	if diags := gohcl.DecodeBody(file.Body, nil, &c); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.ExportDir == "" {
		c.Session.ExportDir = "exports"
	}

	if c.Soak == nil {
		c.Soak = &SoakConfig{}
	}
	if c.Soak.Sessions == 0 {
		c.Soak.Sessions = 200
	}
	if c.Soak.Actions == 0 {
		c.Soak.Actions = 400
	}
	if c.Soak.Workers == 0 {
		c.Soak.Workers = 8
	}
	if c.Soak.Seed == 0 {
		c.Soak.Seed = 1
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if !contains(logLevels, c.Log.Level) {
		return fmt.Errorf("invalid log level %q (want one of %s)", c.Log.Level, strings.Join(logLevels, ", "))
	}
	if !contains(logFormats, c.Log.Format) {
		return fmt.Errorf("invalid log format %q (want one of %s)", c.Log.Format, strings.Join(logFormats, ", "))
	}
	if c.Soak.Sessions < 1 {
		return fmt.Errorf("soak sessions must be positive, got %d", c.Soak.Sessions)
	}
	if c.Soak.Actions < 1 {
		return fmt.Errorf("soak actions must be positive, got %d", c.Soak.Actions)
	}
	if c.Soak.Workers < 1 {
		return fmt.Errorf("soak workers must be positive, got %d", c.Soak.Workers)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
