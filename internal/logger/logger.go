// Package logger provides leveled console logging and crash recovery for task-cli.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "task-cli"

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Level:     log.InfoLevel,
		Formatter: log.TextFormatter,
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	})
}

// NewFromConfig creates a logger from string configuration values.
// verbose forces debug level. A nil writer means stderr.
func NewFromConfig(w io.Writer, level string, verbose bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := DefaultOptions()
	opts.Level = ParseLevel(level)
	if verbose {
		opts.Level = log.DebugLevel
	}
	return New(w, opts)
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *log.Logger {
	return New(io.Discard, DefaultOptions())
}

// ParseLevel parses a string log level. "warning" is accepted as an alias
// for warn; unknown values fall back to info.
func ParseLevel(level string) log.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = log.WarnLevel.String()
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
