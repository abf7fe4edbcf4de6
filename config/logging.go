package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig defines the application log output.
type LoggingConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error or disabled.
	Level string `json:"level"`
	// Format is "json" or "console". Empty keeps the APP_ENV detection.
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level and format names.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("level %q: %w", c.Level, err)
	}
	switch c.Format {
	case "", "json", "console":
		return nil
	default:
		return fmt.Errorf("unknown format %s", c.Format)
	}
}
