package mosaic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/assembly"
	"github.com/katalvlaran/jigsaw/builder"
	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/mosaic"
	"github.com/katalvlaran/jigsaw/tile"
)

func arrange(t *testing.T, raw map[int]*grid.Grid[byte]) *assembly.Arrangement {
	t.Helper()
	tiles := make([]*tile.Tile, 0, len(raw))
	for id, g := range raw {
		tl, err := tile.New(id, g)
		require.NoError(t, err)
		tiles = append(tiles, tl)
	}
	g, err := adjacency.Build(tiles)
	require.NoError(t, err)
	c, err := adjacency.Classify(g)
	require.NoError(t, err)
	a, err := assembly.Assemble(g, c)
	require.NoError(t, err)

	return a
}

// oriented reports whether b equals a under one of the 8 orientations.
func oriented(a, b *grid.Grid[byte]) bool {
	for _, o := range tile.Orientations() {
		if o.Apply(a).Equal(b) {
			return true
		}
	}

	return false
}

func TestStitchScan_Reference(t *testing.T) {
	a := arrange(t, builder.Reference().Tiles)

	img, err := mosaic.Stitch(a)
	require.NoError(t, err)
	assert.Equal(t, 24, img.Rows())
	assert.Equal(t, 24, img.Cols())

	res, err := mosaic.Scan(img, mosaic.Monster())
	require.NoError(t, err)
	assert.Equal(t, builder.ReferenceMatches, res.Matches)
	assert.Equal(t, builder.ReferenceRoughness, res.Roughness)
	assert.Equal(t, 303, res.Filled)
	assert.Equal(t, res.Orientation, res.All[res.Orientation.Index()].Orientation)

	hits := 0
	for _, s := range res.All {
		if s.Matches > 0 {
			hits++
			continue
		}
		assert.Equal(t, res.Filled, s.Roughness, "%v", s.Orientation)
	}
	assert.Equal(t, 1, hits)
}

func TestStitch_Blocks(t *testing.T) {
	a := arrange(t, builder.Reference().Tiles)
	img, err := mosaic.Stitch(a)
	require.NoError(t, err)

	blocks, err := mosaic.Blocks(img, a.TileSide()-2)
	require.NoError(t, err)
	require.Len(t, blocks, a.Side())
	for r := range blocks {
		require.Len(t, blocks[r], a.Side())
		for c, b := range blocks[r] {
			view := a.View(assembly.Pos{Row: r, Col: c})
			assert.True(t, b.Equal(view.Sub(1, 1, 8, 8)), "block (%d,%d)", r, c)
		}
	}

	_, err = mosaic.Blocks(img, 7)
	assert.ErrorIs(t, err, mosaic.ErrBlockSize)
	_, err = mosaic.Blocks(nil, 8)
	assert.ErrorIs(t, err, mosaic.ErrNilInput)
}

func TestStitch_Generated(t *testing.T) {
	monster := mosaic.Monster()
	p, err := builder.Generate(4, 10,
		builder.WithSeed(21), builder.WithDensity(0), builder.WithPattern(monster.Grid(), 3))
	require.NoError(t, err)

	img, err := mosaic.Stitch(arrange(t, p.Tiles))
	require.NoError(t, err)
	assert.True(t, oriented(p.Image, img))

	res, err := mosaic.Scan(img, monster)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Matches)
	assert.Equal(t, 3*monster.Size(), res.Filled)
	assert.Zero(t, res.Roughness)
}

func TestStitch_Errors(t *testing.T) {
	_, err := mosaic.Stitch(nil)
	assert.ErrorIs(t, err, mosaic.ErrNilInput)
}

func TestScan_NoMatches(t *testing.T) {
	img, _ := grid.FromStrings(
		"#...#",
		".#...",
		"..#..",
		"#..##",
	)
	res, err := mosaic.Scan(img, mosaic.Monster())
	require.NoError(t, err)
	assert.Zero(t, res.Matches)
	assert.Equal(t, 7, res.Filled)
	assert.Equal(t, 7, res.Roughness)
	assert.Equal(t, tile.Identity, res.Orientation)
}

func TestScan_OverlappingMatches(t *testing.T) {
	img, _ := grid.FromStrings("###", "..#")
	pat, _ := grid.FromStrings("##")
	p, err := mosaic.NewPattern(pat, tile.Filled)
	require.NoError(t, err)

	res, err := mosaic.Scan(img, p)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Matches)
	assert.Equal(t, tile.Identity, res.Orientation)
	// cell (1,2) is the only one no match covers
	assert.Equal(t, 1, res.Roughness)
}

func TestScan_Errors(t *testing.T) {
	_, err := mosaic.Scan(nil, mosaic.Monster())
	assert.ErrorIs(t, err, mosaic.ErrNilInput)
	img, _ := grid.FromStrings("#")
	_, err = mosaic.Scan(img, nil)
	assert.ErrorIs(t, err, mosaic.ErrNilInput)
}

func TestPattern(t *testing.T) {
	m := mosaic.Monster()
	rows, cols := m.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 20, cols)
	assert.Equal(t, 15, m.Size())
	assert.Equal(t, 15, m.Grid().Count(tile.Filled))

	_, err := mosaic.NewPattern(nil, tile.Filled)
	assert.ErrorIs(t, err, mosaic.ErrNilInput)

	blank, _ := grid.FromStrings("...", "...")
	_, err = mosaic.NewPattern(blank, tile.Filled)
	assert.ErrorIs(t, err, mosaic.ErrEmptyPattern)

	custom, _ := grid.FromStrings("x.x", ".x.")
	p, err := mosaic.NewPattern(custom, 'x')
	require.NoError(t, err)
	assert.Equal(t, 3, p.Size())
}
