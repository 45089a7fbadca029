package assembly

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/jigsaw/tile"
)

// Sentinel errors for assembly.
var (
	// ErrNilInput is returned when the graph or classification is nil.
	ErrNilInput = errors.New("assembly: nil graph or classification")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("assembly: invalid option supplied")

	// ErrNoArrangement is returned when a search exhausts every candidate
	// without completing.
	ErrNoArrangement = errors.New("assembly: no valid arrangement")

	// ErrStateBudget is returned when a search expands more states than allowed.
	ErrStateBudget = errors.New("assembly: state budget exceeded")

	// ErrBadArrangement indicates an arrangement that is not a bijection
	// between tiles and grid positions.
	ErrBadArrangement = errors.New("assembly: arrangement is not a bijection")

	// ErrNotConjoined indicates two grid-adjacent placements whose facing
	// edges differ.
	ErrNotConjoined = errors.New("assembly: adjacent edges not conjoined")
)

// statesPerTileOrientation scales the automatic state budget.
const statesPerTileOrientation = 64

// Pos is a grid position, row-major from the top-left corner.
type Pos struct {
	Row, Col int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// step returns the neighbour of p across s.
func (p Pos) step(s tile.Side) Pos {
	dr, dc := s.Delta()
	return Pos{p.Row + dr, p.Col + dc}
}

// Placement assigns a tile, by id, and its orientation to a grid position.
type Placement struct {
	ID     int
	Orient tile.Orientation
}

func (p Placement) String() string { return fmt.Sprintf("%d@%s", p.ID, p.Orient) }

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when a
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for Border, Interior and Assemble.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxStates bounds the number of states a search creates, and with it
	// the worklist. 0 selects 64 × tiles × 8.
	MaxStates int

	// Logger receives debug-level search progress.
	Logger *slog.Logger

	// OnEnqueue is called whenever a state is pushed onto a worklist, with
	// the number of placements it holds.
	OnEnqueue func(depth int)

	// OnPlace is called whenever a candidate is accepted at a position.
	OnPlace func(pos Pos, p Placement)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - automatic state budget (MaxStates == 0)
//   - a logger that discards everything
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxStates: 0,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnEnqueue: func(int) {},
		OnPlace:   func(Pos, Placement) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates bounds the number of states created per search.
//
//	n > 0:  at most n states
//	n == 0: automatic bound
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithLogger sets the logger for search progress.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a callback to run on every pushed state.
func WithOnEnqueue(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnPlace registers a callback to run on every accepted candidate.
func WithOnPlace(fn func(pos Pos, p Placement)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlace = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions and reports a recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
