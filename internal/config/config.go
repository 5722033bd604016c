// Package config provides configuration loading for convoctl.
package config

import (
	"github.com/fyrsmithlabs/convoctl/internal/sanitize"
)

// Config is the root configuration for the CLI.
type Config struct {
	Convert ConvertConfig `koanf:"convert"`
	Logging LoggingConfig `koanf:"logging"`
}

// ConvertConfig holds defaults for the convert command. CLI flags take
// precedence over these values.
type ConvertConfig struct {
	// OutputDir is the directory Markdown documents are written under.
	OutputDir string `koanf:"output_dir"`
	// Overwrite replaces existing output files instead of skipping them.
	Overwrite bool `koanf:"overwrite"`
	// MaxNameLength bounds sanitized filename stems.
	MaxNameLength int `koanf:"max_name_length"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `koanf:"level"`
	// Format is "console" or "json".
	Format string `koanf:"format"`
}

// Default returns the hardcoded configuration defaults.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			OutputDir:     "markdown_conversations",
			Overwrite:     false,
			MaxNameLength: sanitize.DefaultMaxLength,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
