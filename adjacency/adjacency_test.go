package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/builder"
	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/tile"
)

// tilesOf wraps raw grids into tiles.
func tilesOf(t *testing.T, raw map[int]*grid.Grid[byte]) []*tile.Tile {
	t.Helper()
	out := make([]*tile.Tile, 0, len(raw))
	for id, g := range raw {
		tl, err := tile.New(id, g)
		require.NoError(t, err)
		out = append(out, tl)
	}

	return out
}

func classifyRaw(t *testing.T, raw map[int]*grid.Grid[byte]) (*adjacency.Classification, error) {
	t.Helper()
	g, err := adjacency.Build(tilesOf(t, raw))
	require.NoError(t, err)

	return adjacency.Classify(g)
}

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

func TestBuild_Errors(t *testing.T) {
	_, err := adjacency.Build(nil)
	assert.ErrorIs(t, err, adjacency.ErrNoTiles)

	_, err = adjacency.Build([]*tile.Tile{nil})
	assert.ErrorIs(t, err, adjacency.ErrNilTile)

	a, _ := grid.FromStrings("#..", "...", "..#")
	b, _ := grid.FromStrings("#...", "....", "....", "...#")
	ta, _ := tile.New(1, a)
	tb, _ := tile.New(1, a)
	_, err = adjacency.Build([]*tile.Tile{ta, tb})
	assert.ErrorIs(t, err, adjacency.ErrDuplicateID)

	tc, _ := tile.New(2, b)
	_, err = adjacency.Build([]*tile.Tile{ta, tc})
	assert.ErrorIs(t, err, adjacency.ErrMixedSides)
}

func TestBuild_ReferenceNeighbors(t *testing.T) {
	g, err := adjacency.Build(tilesOf(t, builder.Reference().Tiles))
	require.NoError(t, err)

	assert.Equal(t, 9, g.Len())
	assert.Equal(t, []int{2311, 2729}, g.Neighbors(1951))
	assert.Equal(t, []int{1489, 2311, 2473, 2729}, g.Neighbors(1427))
	assert.Equal(t, 2, g.Unmatched(1951))
	assert.Equal(t, 0, g.Unmatched(1427))

	// 12 shared borders in a 3×3 square, one link each.
	assert.Len(t, g.Links(), 12)
	for _, l := range g.Links() {
		assert.Less(t, l.From, l.To)
		a, _ := g.Tile(l.From)
		b, _ := g.Tile(l.To)
		ea, eb := a.RawEdges()[l.FromSide], b.RawEdges()[l.ToSide]
		assert.True(t, tile.Compatible(ea, eb))
		assert.Equal(t, l.Reversed, !tile.Conjoined(ea, eb))
	}
}

func TestBuild_CompatibilitySymmetric(t *testing.T) {
	g, err := adjacency.Build(tilesOf(t, builder.Reference().Tiles))
	require.NoError(t, err)

	for _, a := range g.Tiles() {
		for _, b := range g.Tiles() {
			if a.ID() == b.ID() {
				continue
			}
			assert.Equal(t, contains(g.Neighbors(a.ID()), b.ID()), contains(g.Neighbors(b.ID()), a.ID()),
				"compatible(%d,%d) must equal compatible(%d,%d)", a.ID(), b.ID(), b.ID(), a.ID())
		}
	}
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}

//----------------------------------------------------------------------------//
// Classify
//----------------------------------------------------------------------------//

func TestClassify_Reference(t *testing.T) {
	c, err := classifyRaw(t, builder.Reference().Tiles)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Side)
	assert.Equal(t, []int{1171, 1951, 2971, 3079}, c.Corners)
	assert.Equal(t, []int{1489, 2311, 2473, 2729}, c.Borders)
	assert.Equal(t, []int{1427}, c.Interior)
	assert.Equal(t, []int{1171, 1489, 1951, 2311, 2473, 2729, 2971, 3079}, c.Frame())
	assert.Equal(t, adjacency.Corner, c.ClassOf(1951))
	assert.Equal(t, adjacency.Border, c.ClassOf(2311))
	assert.Equal(t, adjacency.Interior, c.ClassOf(1427))
	assert.Equal(t, 2, c.Outward(1951))

	product, err := c.CornerProduct()
	require.NoError(t, err)
	assert.Equal(t, builder.ReferenceCornerProduct, product)
}

func TestClassify_Counts(t *testing.T) {
	for _, side := range []int{2, 3, 4, 5} {
		p, err := builder.Generate(side, 10, builder.WithSeed(int64(side)))
		require.NoError(t, err)

		c, err := classifyRaw(t, p.Tiles)
		require.NoError(t, err, "side %d", side)
		assert.Equal(t, side, c.Side)
		assert.Len(t, c.Corners, 4)
		assert.Len(t, c.Borders, 4*(side-2))
		assert.Len(t, c.Interior, side*side-4*(side-1))

		corners := []int{p.Layout[0][0], p.Layout[0][side-1], p.Layout[side-1][0], p.Layout[side-1][side-1]}
		assert.ElementsMatch(t, corners, c.Corners)
	}
}

func TestClassify_SingleTile(t *testing.T) {
	g, _ := grid.FromStrings("#..", ".#.", "..#")
	c, err := classifyRaw(t, map[int]*grid.Grid[byte]{42: g})
	require.NoError(t, err)

	assert.Equal(t, 1, c.Side)
	assert.Equal(t, []int{42}, c.Corners)
	assert.Empty(t, c.Borders)
	assert.Empty(t, c.Interior)
	assert.Equal(t, 4, c.Outward(42))
	product, err := c.CornerProduct()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), product)
}

func TestClassify_NotSquare(t *testing.T) {
	// a 2×2 puzzle plus one blank tile: five tiles
	p, err := builder.Generate(2, 10, builder.WithSeed(3))
	require.NoError(t, err)
	raw := p.Tiles
	extra, _ := grid.Filled(10, 10, tile.Empty)
	raw[1] = extra

	_, err = classifyRaw(t, raw)
	assert.ErrorIs(t, err, adjacency.ErrMalformed)
	assert.ErrorIs(t, err, adjacency.ErrNotSquare)
}

func TestClassify_TooManyUnmatched(t *testing.T) {
	raw := builder.Reference().Tiles
	blank, _ := grid.Filled(10, 10, tile.Empty)
	raw[1427] = blank

	_, err := classifyRaw(t, raw)
	assert.ErrorIs(t, err, adjacency.ErrMalformed)
	assert.ErrorIs(t, err, adjacency.ErrTooManyUnmatched)
}

func TestClassify_ClassCount(t *testing.T) {
	// Replacing the centre with a copy of a corner leaves seven tiles with two
	// unmatched sides and two with none.
	raw := builder.Reference().Tiles
	delete(raw, 1427)
	raw[9999] = raw[1951].Clone()

	_, err := classifyRaw(t, raw)
	assert.ErrorIs(t, err, adjacency.ErrMalformed)
	assert.ErrorIs(t, err, adjacency.ErrClassCount)
}

func TestCornerProduct_Overflow(t *testing.T) {
	raw := map[int]*grid.Grid[byte]{}
	big := 1 << 20
	p, err := builder.Generate(2, 10, builder.WithSeed(5), builder.WithFirstID(big))
	require.NoError(t, err)
	for id, g := range p.Tiles {
		raw[id] = g
	}
	c, err := classifyRaw(t, raw)
	require.NoError(t, err)

	// four ids ≥ 2^20 multiply past 2^64
	_, err = c.CornerProduct()
	assert.ErrorIs(t, err, adjacency.ErrOverflow)
}

func TestIsOutwardEdge(t *testing.T) {
	c, err := classifyRaw(t, builder.Reference().Tiles)
	require.NoError(t, err)
	raw := builder.Reference().Tiles[1951]
	tl, _ := tile.New(1951, raw)

	outward := 0
	for _, e := range tl.RawEdges() {
		if c.IsOutwardEdge(1951, e) {
			outward++
		}
		assert.Equal(t, c.IsOutwardEdge(1951, e), c.IsOutwardEdge(1951, e.Reverse()))
	}
	assert.Equal(t, 2, outward)
}
