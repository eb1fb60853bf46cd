// Package config loads the plainmap command configuration from the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by every plainmap command. Flags given on
// the command line override them.
type Config struct {
	Logging LoggingConfig
	// Rules selected by conversions, in priority order.
	Rules              []string `env:"PLAINMAP_RULES" envSeparator:","`
	ExcludeDefaultRule bool     `env:"PLAINMAP_EXCLUDE_DEFAULT_RULE" envDefault:"false"`
	// Schema is the YAML declaration file; empty means the built-in declarations.
	Schema string `env:"PLAINMAP_SCHEMA"`
}

// LoggingConfig configures the command logger.
type LoggingConfig struct {
	Level  string `env:"PLAINMAP_LOG_LEVEL" envDefault:"warn"`
	Format string `env:"PLAINMAP_LOG_FORMAT" envDefault:"text"`
}

// Load reads Config from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate checks the values that cannot be expressed as env tags.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: want text or json", c.Logging.Format)
	}

	return nil
}
