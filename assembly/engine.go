package assembly

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/tile"
)

// slot is a placement in engine coordinates: tile index and orientation index.
type slot struct {
	tile, orient int
}

// engine holds the read-only data every search state consults. Edges and
// outward flags are prefetched for all tiles in all eight orientations.
type engine struct {
	opts    Options
	side    int
	tiles   []*tile.Tile // ascending id
	index   map[int]int  // id → position in tiles
	class   []adjacency.Class
	corners []int // tile indices, ascending id
	edges   [][tile.NumOrientations]tile.Edges
	outward [][tile.NumOrientations][tile.NumSides]bool

	budget int
	states int // created in the current search
}

// newEngine validates inputs and options and prefetches the edge table.
func newEngine(g *adjacency.Graph, c *adjacency.Classification, opts []Option) (*engine, error) {
	if g == nil || c == nil {
		return nil, ErrNilInput
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if c.Side*c.Side != g.Len() {
		return nil, fmt.Errorf("%w: side %d for %d tiles", ErrBadArrangement, c.Side, g.Len())
	}

	tiles := g.Tiles()
	n := len(tiles)
	e := &engine{
		opts:    o,
		side:    c.Side,
		tiles:   tiles,
		index:   make(map[int]int, n),
		class:   make([]adjacency.Class, n),
		edges:   make([][tile.NumOrientations]tile.Edges, n),
		outward: make([][tile.NumOrientations][tile.NumSides]bool, n),
		budget:  o.MaxStates,
	}
	if e.budget == 0 {
		e.budget = statesPerTileOrientation * n * tile.NumOrientations
	}
	e.initPrefetch(g, c)

	return e, nil
}

// initPrefetch fills the per-(tile, orientation) edge and outward tables.
func (e *engine) initPrefetch(g *adjacency.Graph, c *adjacency.Classification) {
	for i, t := range e.tiles {
		id := t.ID()
		e.index[id] = i
		e.class[i] = c.ClassOf(id)
		matched := g.Matched(id)
		for _, o := range tile.Orientations() {
			k := o.Index()
			e.edges[i][k] = t.EdgesAt(o)
			for _, s := range tile.Sides {
				e.outward[i][k][s] = !matched[o.Source(s)]
			}
		}
	}
	for _, id := range c.Corners {
		e.corners = append(e.corners, e.index[id])
	}
}

// reset starts a fresh state count for the next search.
func (e *engine) reset() { e.states = 0 }

// tick checks cancellation before a state is expanded.
func (e *engine) tick() error {
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	return nil
}

// admit accounts for one state about to join the worklist. Every state a
// search creates is charged, so the worklist never holds more than budget.
func (e *engine) admit() error {
	e.states++
	if e.states > e.budget {
		return fmt.Errorf("%w: more than %d states", ErrStateBudget, e.budget)
	}

	return nil
}

// joins reports whether a at p and b across side s of p present conjoined edges.
func (e *engine) joins(a slot, s tile.Side, b slot) bool {
	return tile.Conjoined(e.edges[a.tile][a.orient][s], e.edges[b.tile][b.orient][s.Opposite()])
}

func (e *engine) placement(s slot) Placement {
	return Placement{ID: e.tiles[s.tile].ID(), Orient: tile.FromIndex(s.orient)}
}

func (e *engine) slotOf(p Placement) (slot, bool) {
	i, ok := e.index[p.ID]
	if !ok {
		return slot{}, false
	}

	return slot{tile: i, orient: p.Orient.Index()}, true
}

// ringLen returns the number of frame positions of an n×n grid.
func ringLen(n int) int {
	if n == 1 {
		return 1
	}

	return 4 * (n - 1)
}

// ringPos returns frame position i, walking clockwise from (0,0): top row,
// right column, bottom row, left column.
func ringPos(n, i int) Pos {
	if n == 1 {
		return Pos{}
	}
	q, r := i/(n-1), i%(n-1)
	switch q {
	case 0:
		return Pos{0, r}
	case 1:
		return Pos{r, n - 1}
	case 2:
		return Pos{n - 1, n - 1 - r}
	default:
		return Pos{n - 1 - r, 0}
	}
}

// facing reports, per side, whether a tile at p looks out of the n×n grid.
func facing(n int, p Pos) (out [tile.NumSides]bool) {
	out[tile.Top] = p.Row == 0
	out[tile.Right] = p.Col == n-1
	out[tile.Bottom] = p.Row == n-1
	out[tile.Left] = p.Col == 0

	return out
}

// toward returns the side of from that faces the adjacent position to.
func toward(from, to Pos) tile.Side {
	for _, s := range tile.Sides {
		if from.step(s) == to {
			return s
		}
	}
	panic(fmt.Sprintf("assembly: %v and %v are not adjacent", from, to))
}
