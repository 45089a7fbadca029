package tile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jigsaw/grid"
)

// Cell symbols.
const (
	Filled byte = '#'
	Empty  byte = '.'
)

// MinSide is the smallest usable tile side: stripping the one-cell border
// must leave at least one cell of content.
const MinSide = 3

var (
	// ErrNilGrid indicates a tile was constructed without cells.
	ErrNilGrid = errors.New("tile: grid is nil")

	// ErrNotSquare indicates the tile grid is not square.
	ErrNotSquare = errors.New("tile: grid is not square")

	// ErrTooSmall indicates the tile side is below MinSide.
	ErrTooSmall = errors.New("tile: side too small")

	// ErrBadSymbol indicates a cell other than Filled or Empty.
	ErrBadSymbol = errors.New("tile: unknown cell symbol")
)

// Tile is an identified square grid with a current orientation.
// The raw grid never changes; view is rebuilt from raw whenever the
// orientation is set, so both always agree.
type Tile struct {
	id     int
	raw    *grid.Grid[byte]
	orient Orientation
	view   *grid.Grid[byte]
}

// New validates cells and wraps them in a Tile with the identity orientation.
// cells is deep-copied.
func New(id int, cells *grid.Grid[byte]) (*Tile, error) {
	if cells == nil {
		return nil, fmt.Errorf("tile %d: %w", id, ErrNilGrid)
	}
	r, c := cells.Shape()
	if r != c {
		return nil, fmt.Errorf("tile %d: %dx%d: %w", id, r, c, ErrNotSquare)
	}
	if r < MinSide {
		return nil, fmt.Errorf("tile %d: side %d < %d: %w", id, r, MinSide, ErrTooSmall)
	}
	if cells.Count(Filled)+cells.Count(Empty) != cells.Len() {
		return nil, fmt.Errorf("tile %d: %w", id, ErrBadSymbol)
	}
	raw := cells.Clone()

	return &Tile{id: id, raw: raw, view: raw.Clone()}, nil
}

// ID returns the tile identity.
func (t *Tile) ID() int { return t.id }

// Side returns the side length in cells.
func (t *Tile) Side() int { return t.raw.Rows() }

// Raw returns a copy of the unoriented grid.
func (t *Tile) Raw() *grid.Grid[byte] { return t.raw.Clone() }

// Orientation returns the current orientation.
func (t *Tile) Orientation() Orientation { return t.orient }

// SetOrientation selects o and materializes the oriented view, O(side²).
// Subsequent Edges and Grid calls observe the new orientation.
func (t *Tile) SetOrientation(flip bool, rot int) {
	t.orient = Orientation{Flip: flip, Rot: rot}.normalize()
	t.view = t.orient.Apply(t.raw)
}

// Grid returns a copy of the tile under its current orientation.
func (t *Tile) Grid() *grid.Grid[byte] { return t.view.Clone() }

// Edges returns the four borders under the current orientation.
func (t *Tile) Edges() Edges { return EdgesOf(t.view) }

// RawEdges returns the four borders of the unoriented grid.
func (t *Tile) RawEdges() Edges { return EdgesOf(t.raw) }

// EdgesAt returns the borders the tile would present under o without
// changing its current orientation. Search code uses this so that sibling
// branches never share a mutable orientation.
func (t *Tile) EdgesAt(o Orientation) Edges { return EdgesOf(o.Apply(t.raw)) }

// GridAt returns the tile under o without changing its current orientation.
func (t *Tile) GridAt(o Orientation) *grid.Grid[byte] { return o.Apply(t.raw) }

// Compatible reports, for each raw side of t, whether any raw edge of other
// matches it forward or reversed. Orientation plays no part: reversing covers
// every way other could be turned or mirrored.
func (t *Tile) Compatible(other *Tile) [NumSides]bool {
	var hits [NumSides]bool
	mine, theirs := t.RawEdges(), other.RawEdges()
	for _, s := range Sides {
		for _, e := range theirs {
			if Compatible(mine[s], e) {
				hits[s] = true
				break
			}
		}
	}

	return hits
}

func (t *Tile) String() string {
	return fmt.Sprintf("Tile %d (%s)", t.id, t.orient)
}
