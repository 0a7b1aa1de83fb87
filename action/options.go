package action

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// ErrPointOutOfRange indicates a fixed point outside 1..n (or n < 1, for
// which no point qualifies) passed to VerifyStabilizer.
var ErrPointOutOfRange = errors.New("action: fixed point outside 1..n")

// Options configures diagnostic reporting for the verification pipeline.
// Diagnostics never change a computed result.
type Options struct {
	// Logger receives one Info record per pipeline check. A nil Logger
	// discards everything.
	Logger *log.Logger
}

// DefaultOptions returns Options that discard all diagnostics.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// logger returns a usable logger, treating nil as discard.
func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}

	return o.Logger
}
