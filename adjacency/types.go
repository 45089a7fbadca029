package adjacency

import (
	"errors"

	"github.com/katalvlaran/jigsaw/tile"
)

// Sentinel errors for adjacency analysis.
var (
	// ErrNoTiles indicates Build received an empty tile set.
	ErrNoTiles = errors.New("adjacency: no tiles")

	// ErrNilTile indicates a nil *tile.Tile in the input.
	ErrNilTile = errors.New("adjacency: nil tile")

	// ErrDuplicateID indicates two tiles share one id.
	ErrDuplicateID = errors.New("adjacency: duplicate tile id")

	// ErrMixedSides indicates tiles of different side lengths.
	ErrMixedSides = errors.New("adjacency: tiles differ in side length")

	// ErrMalformed marks every structural classification failure. The
	// specific cause is wrapped alongside it.
	ErrMalformed = errors.New("adjacency: malformed classification")

	// ErrNotSquare indicates the tile count is not a perfect square.
	ErrNotSquare = errors.New("adjacency: tile count is not a perfect square")

	// ErrTooManyUnmatched indicates a tile with more than two unmatched sides.
	ErrTooManyUnmatched = errors.New("adjacency: tile has more than two unmatched sides")

	// ErrClassCount indicates corner/border/interior counts inconsistent with the grid side.
	ErrClassCount = errors.New("adjacency: class counts inconsistent with grid side")

	// ErrOverflow indicates the corner id product does not fit in uint64.
	ErrOverflow = errors.New("adjacency: corner product overflows uint64")

	// ErrNegativeID indicates a negative id in a product.
	ErrNegativeID = errors.New("adjacency: negative tile id")
)

// Class is the role a tile plays in the final square.
type Class int

const (
	// Interior tiles have every side matched.
	Interior Class = iota
	// Border tiles sit on the frame with exactly one outward side.
	Border
	// Corner tiles have two outward sides.
	Corner
)

func (c Class) String() string {
	switch c {
	case Interior:
		return "interior"
	case Border:
		return "border"
	case Corner:
		return "corner"
	default:
		return "class?"
	}
}

// Link records one compatible pair of raw edges between two tiles.
// From < To always holds; Reversed is set when the edges only agree after
// reversing one of them.
type Link struct {
	From, To         int
	FromSide, ToSide tile.Side
	Reversed         bool
}
