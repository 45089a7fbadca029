package adjacency

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/jigsaw/tile"
)

// Classification is the outcome of Classify: the inferred grid side and the
// role of every tile.
type Classification struct {
	// Side is N for an N×N arrangement.
	Side int

	// Corners, Borders and Interior hold tile ids in ascending order.
	// Borders excludes corners.
	Corners  []int
	Borders  []int
	Interior []int

	classes map[int]Class
	outward map[int][]tile.Edge // raw edges with no compatible partner
}

// Classify assigns every tile in g a Class and validates the counts against
// an N×N square: 4 corners, 4(N−2) borders and (N−2)² interior tiles.
//
// A single tile (N=1) is the degenerate case: all four sides are unmatched,
// it is classified Corner, and exactly one corner is required.
//
// Every failure wraps ErrMalformed.
func Classify(g *Graph) (*Classification, error) {
	n := g.Len()
	side := isqrt(n)
	if side*side != n {
		return nil, fmt.Errorf("%w: %d tiles: %w", ErrMalformed, n, ErrNotSquare)
	}

	c := &Classification{
		Side:    side,
		classes: make(map[int]Class, n),
		outward: make(map[int][]tile.Edge, n),
	}
	for _, t := range g.tiles {
		id := t.ID()
		matched := g.matched[id]
		raw := t.RawEdges()
		for _, s := range tile.Sides {
			if !matched[s] {
				c.outward[id] = append(c.outward[id], raw[s])
			}
		}

		switch u := g.Unmatched(id); {
		case n == 1:
			c.classes[id] = Corner
			c.Corners = append(c.Corners, id)
		case u == 2:
			c.classes[id] = Corner
			c.Corners = append(c.Corners, id)
		case u == 1:
			c.classes[id] = Border
			c.Borders = append(c.Borders, id)
		case u == 0:
			c.classes[id] = Interior
			c.Interior = append(c.Interior, id)
		default:
			return nil, fmt.Errorf("%w: tile %d has %d unmatched sides: %w", ErrMalformed, id, u, ErrTooManyUnmatched)
		}
	}

	wantCorners, wantBorders, wantInterior := expectedCounts(side)
	if len(c.Corners) != wantCorners || len(c.Borders) != wantBorders || len(c.Interior) != wantInterior {
		return nil, fmt.Errorf("%w: side %d: corners=%d (want %d) borders=%d (want %d) interior=%d (want %d): %w",
			ErrMalformed, side,
			len(c.Corners), wantCorners, len(c.Borders), wantBorders, len(c.Interior), wantInterior,
			ErrClassCount)
	}

	return c, nil
}

// expectedCounts returns the corner, border and interior counts of an N×N square.
func expectedCounts(side int) (corners, borders, interior int) {
	switch side {
	case 1:
		return 1, 0, 0
	default:
		return 4, 4 * (side - 2), (side - 2) * (side - 2)
	}
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}

// ClassOf returns the class of tile id.
func (c *Classification) ClassOf(id int) Class { return c.classes[id] }

// Frame returns the ids of every tile on the outer ring (corners and borders),
// ascending.
func (c *Classification) Frame() []int {
	out := make([]int, 0, len(c.Corners)+len(c.Borders))
	i, j := 0, 0
	for i < len(c.Corners) || j < len(c.Borders) {
		if j >= len(c.Borders) || (i < len(c.Corners) && c.Corners[i] < c.Borders[j]) {
			out = append(out, c.Corners[i])
			i++
		} else {
			out = append(out, c.Borders[j])
			j++
		}
	}

	return out
}

// Outward returns how many sides of tile id face outward.
func (c *Classification) Outward(id int) int { return len(c.outward[id]) }

// IsOutwardEdge reports whether e, an edge of tile id under any orientation,
// is one of that tile's unmatched raw edges (forward or reversed).
func (c *Classification) IsOutwardEdge(id int, e tile.Edge) bool {
	for _, o := range c.outward[id] {
		if tile.Compatible(o, e) {
			return true
		}
	}

	return false
}

// CornerProduct multiplies the corner ids. The product is exact or an error:
// ErrNegativeID for a negative id, ErrOverflow past math.MaxUint64.
func (c *Classification) CornerProduct() (uint64, error) {
	product := uint64(1)
	for _, id := range c.Corners {
		if id < 0 {
			return 0, fmt.Errorf("corner %d: %w", id, ErrNegativeID)
		}
		hi, lo := bits.Mul64(product, uint64(id))
		if hi != 0 {
			return 0, fmt.Errorf("corners %v: %w", c.Corners, ErrOverflow)
		}
		product = lo
	}

	return product, nil
}
