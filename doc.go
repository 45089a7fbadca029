// Package jigsaw reconstructs a square image from scrambled square tiles.
//
// Every tile is a small grid of filled ('#') and empty ('.') cells with an
// integer id. Neither position nor orientation is known; the only evidence
// is that neighbouring tiles share identical border lines.
//
// 🚀 Pipeline (Reconstruct):
//
//	tiles ──▶ adjacency.Build / Classify   corner product (answer A)
//	      ──▶ assembly.Border               closed clockwise frame
//	      ──▶ assembly.Interior             row-major fill, Verify
//	      ──▶ mosaic.Stitch                 composite image
//	      ──▶ mosaic.Scan                   pattern matches, roughness (answer B)
//
// Every failure is returned as *Error naming the stage that stopped
// (classify, border, interior, stitch, scan) and wrapping the package
// sentinel, so both
//
//	var je *jigsaw.Error
//	errors.As(err, &je)
//	errors.Is(err, assembly.ErrNoArrangement)
//
// work. There is no partial result.
//
// Subpackages:
//
//	grid/        generic 2-D grid: rotations, flips, slicing
//	tile/        tiles, the 8 orientations, edges
//	adjacency/   edge compatibility graph and corner/border/interior classes
//	assembly/    frame and interior search, Arrangement
//	mosaic/      stitching and pattern scanning
//	builder/     seeded generator of solvable puzzles
//
// Quick example:
//
//	res, err := jigsaw.Reconstruct(ctx, tiles, nil) // nil → sea monster
//	if err != nil { ... }
//	fmt.Println(res.CornerProduct, res.Roughness)
package jigsaw
