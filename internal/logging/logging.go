// Package logging provides console logging with charmbracelet/log.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "gt2sp",
	}
}

// New creates a console logger. Verbose mode lowers the level to debug
// so per-list conversion progress becomes visible.
func New(verbose bool) *log.Logger {
	opts := DefaultOptions()
	if verbose {
		opts.Level = log.DebugLevel
	}
	return NewWithOptions(os.Stderr, opts)
}

// NewWithOptions creates a console logger with explicit options,
// writing to w. Useful for tests that capture output.
func NewWithOptions(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}
