// Package logging builds the structured loggers used by the command line
// and the terminal UI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options selects where and how much to log.
type Options struct {
	Level  string    // debug, info, warn, error; empty means info
	File   string    // append to this file instead of Writer
	Writer io.Writer // used when File is empty; nil discards output
	Prefix string
}

// New returns a logger and a close function for any opened file.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	out := opts.Writer
	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", opts.File, err)
		}
		out = f
		closeFn = f.Close
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
