// Package logging builds the structured pterm logger shared by the services
// and the HTTP server.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/hance08/tally/internal/config"
	"github.com/pterm/pterm"
)

func New(cfg config.LogConfig, w io.Writer) (*pterm.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	logger := pterm.DefaultLogger.
		WithLevel(level).
		WithWriter(w)

	switch strings.ToLower(cfg.Format) {
	case "", "colorful", "text":
		logger = logger.WithFormatter(pterm.LogFormatterColorful)
	case "json":
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	default:
		return nil, fmt.Errorf("unknown log format '%s' (must be colorful or json)", cfg.Format)
	}

	return logger, nil
}

// Discard returns a logger that drops everything; used by tests and one-shot
// CLI commands that render their own output.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}

func ParseLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(level) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelInfo, fmt.Errorf("unknown log level '%s'", level)
	}
}
