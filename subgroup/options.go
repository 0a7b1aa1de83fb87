package subgroup

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures diagnostic reporting for the verifiers in this
// package. Diagnostics are an observation channel only — they never
// change a verifier's boolean result.
type Options struct {
	// Logger receives one Warn record describing the first violated
	// axiom (the offending element or pair, in cycle notation) and Info
	// records from the composite pipelines. A nil Logger discards
	// everything.
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
