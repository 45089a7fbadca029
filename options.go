package jigsaw

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/jigsaw/assembly"
)

// Option configures Reconstruct.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of Reconstruct.
type Options struct {
	// MaxStates bounds each assembly search; 0 selects the automatic bound.
	MaxStates int

	// Logger receives debug-level progress of every stage.
	Logger *slog.Logger

	// SkipVerify disables the edge check of the finished arrangement.
	SkipVerify bool

	err error
}

// DefaultOptions returns the automatic state bound, a discarding logger and
// verification enabled.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxStates bounds each assembly search. n < 0 is a violation.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithLogger sets the progress logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithoutVerify skips Arrangement.Verify before stitching.
func WithoutVerify() Option {
	return func(o *Options) {
		o.SkipVerify = true
	}
}

// assemblyOptions translates o for the assembly package.
func (o Options) assemblyOptions() []assembly.Option {
	return []assembly.Option{
		assembly.WithMaxStates(o.MaxStates),
		assembly.WithLogger(o.Logger),
	}
}
