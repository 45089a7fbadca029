package jigsaw

import (
	"context"
	"sort"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/assembly"
	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/mosaic"
	"github.com/katalvlaran/jigsaw/tile"
)

// Result is a successful reconstruction.
type Result struct {
	// CornerProduct is the product of the four corner ids (answer A).
	CornerProduct uint64

	// Roughness is the number of filled cells not covered by any pattern
	// match in the selected orientation (answer B).
	Roughness int

	// Matches is the pattern count in the selected orientation.
	Matches int

	// Orientation is the image orientation the scan selected.
	Orientation tile.Orientation

	// Side is N for the N×N arrangement.
	Side int

	Classification *adjacency.Classification
	Arrangement    *assembly.Arrangement

	// Image is the stitched composite in the arrangement's orientation.
	Image *grid.Grid[byte]
}

// Reconstruct assembles tiles into a square, stitches the composite image
// and scans it for pattern (nil selects mosaic.Monster).
//
// tiles maps id to raw grid; grids are copied. Any failure is returned as
// *Error, except option violations and ErrNoTiles.
func Reconstruct(ctx context.Context, tiles map[int]*grid.Grid[byte], pattern *mosaic.Pattern, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	if pattern == nil {
		pattern = mosaic.Monster()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	log := o.Logger

	// Classify
	ids := make([]int, 0, len(tiles))
	for id := range tiles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ts := make([]*tile.Tile, 0, len(ids))
	for _, id := range ids {
		t, err := tile.New(id, tiles[id])
		if err != nil {
			return nil, fail(StageClassify, err)
		}
		ts = append(ts, t)
	}
	g, err := adjacency.Build(ts)
	if err != nil {
		return nil, fail(StageClassify, err)
	}
	c, err := adjacency.Classify(g)
	if err != nil {
		return nil, fail(StageClassify, err)
	}
	product, err := c.CornerProduct()
	if err != nil {
		return nil, fail(StageClassify, err)
	}
	log.Debug("classified", "side", c.Side, "corners", c.Corners, "product", product)

	// Assemble
	aopts := append(o.assemblyOptions(), assembly.WithContext(ctx))
	ring, err := assembly.Border(g, c, aopts...)
	if err != nil {
		return nil, fail(StageBorder, err)
	}
	arr, err := assembly.Interior(g, c, ring, aopts...)
	if err != nil {
		return nil, fail(StageInterior, err)
	}
	if !o.SkipVerify {
		if err = arr.Verify(); err != nil {
			return nil, fail(StageInterior, err)
		}
	}
	log.Debug("assembled", "layout", arr.Layout())

	// Stitch & scan
	img, err := mosaic.Stitch(arr)
	if err != nil {
		return nil, fail(StageStitch, err)
	}
	scan, err := mosaic.Scan(img, pattern)
	if err != nil {
		return nil, fail(StageScan, err)
	}
	log.Debug("scanned", "orientation", scan.Orientation.String(), "matches", scan.Matches, "roughness", scan.Roughness)

	return &Result{
		CornerProduct:  product,
		Roughness:      scan.Roughness,
		Matches:        scan.Matches,
		Orientation:    scan.Orientation,
		Side:           c.Side,
		Classification: c,
		Arrangement:    arr,
		Image:          img,
	}, nil
}
