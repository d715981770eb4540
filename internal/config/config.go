// Package config loads the TOML configuration for the loxfront CLI
// collaborator. None of it is read by the lexer, parser, or DOT
// packages, which take every input as explicit function arguments; it
// exists purely to configure how the CLI drives them.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the top-level TOML document shape.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Logging LoggingConfig `toml:"logging"`
}

// OutputConfig holds the CLI's output settings.
type OutputConfig struct {
	// Format is one of "tokens", "ast", or "dot". No subcommand reads it;
	// the subcommand invoked selects the output.
	Format string `toml:"format"`
	// Rankdir is passed through to the DOT emitter's graph attribute by
	// the dot subcommand.
	Rankdir string `toml:"rankdir"`
}

// LoggingConfig controls the zap logger built for the CLI run.
type LoggingConfig struct {
	// Level is one of zap's level names: "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// Load reads and parses the TOML file at path, then fills in any field
// left at its zero value with a default.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration the CLI uses when no config file is
// given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "dot"
	}
	if c.Output.Rankdir == "" {
		c.Output.Rankdir = "TB"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
