package assembly

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/tile"
)

// Arrangement is a completed N×N layout: a bijection between tiles and grid
// positions, each with an orientation. It is immutable once built.
type Arrangement struct {
	side  int
	cells []Placement // row-major
	tiles map[int]*tile.Tile
}

// NewArrangement builds an Arrangement from an explicit layout, checking that
// layout is side×side and uses every tile exactly once (else ErrBadArrangement).
// Edges are not checked; call Verify for that.
func NewArrangement(tiles []*tile.Tile, layout [][]Placement) (*Arrangement, error) {
	n := len(layout)
	if n == 0 || len(tiles) != n*n {
		return nil, fmt.Errorf("%w: %d tiles for a %d×%d layout", ErrBadArrangement, len(tiles), n, n)
	}
	a := &Arrangement{
		side:  n,
		cells: make([]Placement, 0, n*n),
		tiles: make(map[int]*tile.Tile, n*n),
	}
	for _, t := range tiles {
		if t == nil {
			return nil, fmt.Errorf("%w: nil tile", ErrBadArrangement)
		}
		a.tiles[t.ID()] = t
	}
	seen := make(map[int]bool, n*n)
	for r, row := range layout {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadArrangement, r, len(row), n)
		}
		for c, p := range row {
			if _, ok := a.tiles[p.ID]; !ok || seen[p.ID] {
				return nil, fmt.Errorf("%w: tile %d at %v unknown or repeated", ErrBadArrangement, p.ID, Pos{r, c})
			}
			seen[p.ID] = true
			a.cells = append(a.cells, p)
		}
	}

	return a, nil
}

// Side returns N.
func (a *Arrangement) Side() int { return a.side }

// Len returns the number of placed tiles (N²).
func (a *Arrangement) Len() int { return len(a.cells) }

// TileSide returns the side length of the placed tiles.
func (a *Arrangement) TileSide() int { return a.tiles[a.cells[0].ID].Side() }

// At returns the placement at p. It panics if p lies outside the grid.
func (a *Arrangement) At(p Pos) Placement {
	if p.Row < 0 || p.Row >= a.side || p.Col < 0 || p.Col >= a.side {
		panic(fmt.Sprintf("assembly: Arrangement.At%v outside %d×%d", p, a.side, a.side))
	}

	return a.cells[p.Row*a.side+p.Col]
}

// Tile returns the tile with the given id.
func (a *Arrangement) Tile(id int) (*tile.Tile, bool) {
	t, ok := a.tiles[id]
	return t, ok
}

// View returns the oriented grid of the tile placed at p.
func (a *Arrangement) View(p Pos) *grid.Grid[byte] {
	pl := a.At(p)
	return a.tiles[pl.ID].GridAt(pl.Orient)
}

// Edges returns the oriented edges of the tile placed at p.
func (a *Arrangement) Edges(p Pos) tile.Edges {
	pl := a.At(p)
	return a.tiles[pl.ID].EdgesAt(pl.Orient)
}

// Layout returns the tile ids by position.
func (a *Arrangement) Layout() [][]int {
	out := make([][]int, a.side)
	for r := range out {
		out[r] = make([]int, a.side)
		for c := range out[r] {
			out[r][c] = a.cells[r*a.side+c].ID
		}
	}

	return out
}

// Verify checks that every pair of grid-adjacent placements presents
// conjoined edges, returning ErrNotConjoined for the first pair that does not.
func (a *Arrangement) Verify() error {
	for r := 0; r < a.side; r++ {
		for c := 0; c < a.side; c++ {
			p := Pos{r, c}
			e := a.Edges(p)
			for _, s := range [2]tile.Side{tile.Right, tile.Bottom} {
				q := p.step(s)
				if q.Row >= a.side || q.Col >= a.side {
					continue
				}
				if !tile.Conjoined(e[s], a.Edges(q)[s.Opposite()]) {
					return fmt.Errorf("%w: %v %s of %v", ErrNotConjoined, q, s, p)
				}
			}
		}
	}

	return nil
}

// String renders the layout as rows of "id@orientation".
func (a *Arrangement) String() string {
	var sb strings.Builder
	for r := 0; r < a.side; r++ {
		for c := 0; c < a.side; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(a.cells[r*a.side+c].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
