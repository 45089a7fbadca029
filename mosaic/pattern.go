package mosaic

import (
	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/tile"
)

// Pattern is a rectangle of must-be-filled offsets; every other cell of the
// rectangle is a wildcard.
type Pattern struct {
	rows, cols int
	offsets    [][2]int // (row, col) of each must-be-filled cell
}

// NewPattern reads g, treating cells equal to filled as must-be-filled.
// Returns ErrNilInput or ErrEmptyPattern.
func NewPattern(g *grid.Grid[byte], filled byte) (*Pattern, error) {
	if g == nil {
		return nil, ErrNilInput
	}
	p := &Pattern{rows: g.Rows(), cols: g.Cols()}
	for i := 0; i < p.rows; i++ {
		for j := 0; j < p.cols; j++ {
			if g.At(i, j) == filled {
				p.offsets = append(p.offsets, [2]int{i, j})
			}
		}
	}
	if len(p.offsets) == 0 {
		return nil, ErrEmptyPattern
	}

	return p, nil
}

var monster = []string{
	"                  # ",
	"#    ##    ##    ###",
	" #  #  #  #  #  #   ",
}

// Monster returns the standard sea monster: 3×20 with 15 filled cells.
func Monster() *Pattern {
	g, err := grid.FromStrings(monster...)
	if err != nil {
		panic(err) // static data
	}
	p, err := NewPattern(g, tile.Filled)
	if err != nil {
		panic(err)
	}

	return p
}

// Shape returns the bounding rectangle of p.
func (p *Pattern) Shape() (rows, cols int) { return p.rows, p.cols }

// Size returns the number of must-be-filled cells.
func (p *Pattern) Size() int { return len(p.offsets) }

// Grid renders p with tile.Filled for must-be-filled cells and tile.Empty
// for wildcards.
func (p *Pattern) Grid() *grid.Grid[byte] {
	g, _ := grid.Filled(p.rows, p.cols, tile.Empty)
	for _, o := range p.offsets {
		g.Set(o[0], o[1], tile.Filled)
	}

	return g
}

// matchAt reports whether p fits img with its top-left corner at (r, c).
func (p *Pattern) matchAt(img *grid.Grid[byte], r, c int) bool {
	for _, o := range p.offsets {
		if img.At(r+o[0], c+o[1]) != tile.Filled {
			return false
		}
	}

	return true
}
