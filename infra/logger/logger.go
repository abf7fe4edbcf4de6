package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	corelogger "github.com/kilianp07/ridesim/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.NopLogger

// New returns a Logger for the given component. The output format follows
// SetFormat, or the APP_ENV variable when no format was set.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// SetLevel sets the global minimum level for every logger created by this
// package. Accepted values are the zerolog level names (debug, info, warn...).
func SetLevel(level string) error {
	if strings.TrimSpace(level) == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// SetFormat selects the output of loggers created afterwards: "json" or
// "console". An empty value keeps the APP_ENV based detection.
func SetFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "":
		consoleOutput = nil
	case "json":
		v := false
		consoleOutput = &v
	case "console":
		v := true
		consoleOutput = &v
	default:
		return fmt.Errorf("log format %q: want json or console", format)
	}
	return nil
}
