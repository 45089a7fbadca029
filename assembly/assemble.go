package assembly

import (
	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/tile"
)

// Assemble runs Border and then Interior, returning the full Arrangement.
// Each search has its own state budget.
func Assemble(g *adjacency.Graph, c *adjacency.Classification, opts ...Option) (*Arrangement, error) {
	e, err := newEngine(g, c, opts)
	if err != nil {
		return nil, err
	}
	frame, err := e.border()
	if err != nil {
		return nil, err
	}
	inner, err := e.interior(frame)
	if err != nil {
		return nil, err
	}
	e.opts.Logger.Debug("arrangement complete", "side", e.side, "tiles", len(e.tiles))

	return e.arrangement(frame, inner), nil
}

// arrangement places the ring and the row-major interior onto the grid.
func (e *engine) arrangement(frame, inner []slot) *Arrangement {
	n := e.side
	a := &Arrangement{
		side:  n,
		cells: make([]Placement, n*n),
		tiles: make(map[int]*tile.Tile, len(e.tiles)),
	}
	for _, t := range e.tiles {
		a.tiles[t.ID()] = t
	}
	for i, s := range frame {
		p := ringPos(n, i)
		a.cells[p.Row*n+p.Col] = e.placement(s)
	}
	for k, s := range inner {
		r, c := 1+k/(n-2), 1+k%(n-2)
		a.cells[r*n+c] = e.placement(s)
	}

	return a
}
