// Package logging constructs the application logger from configuration.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/xileflig/naming/internal/config"
)

// New returns a logger writing to stderr, honoring the configured color
// mode and verbosity. Core packages never log; the CLI layer decides what
// solve mismatches and diagnostics are worth reporting.
func New(cfg *config.Config) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          config.AppName,
	})
	if cfg.Verbose {
		l.SetLevel(log.DebugLevel)
	}
	switch cfg.ColorMode {
	case config.ColorAlways:
		l.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		l.SetColorProfile(termenv.Ascii)
	}
	return l
}
