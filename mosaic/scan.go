package mosaic

import (
	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/tile"
)

// OrientationScan is the outcome of scanning one orientation of an image.
type OrientationScan struct {
	Orientation tile.Orientation
	Matches     int
	Roughness   int
}

// ScanResult is the outcome of Scan.
type ScanResult struct {
	// Orientation, Matches and Roughness belong to the selected orientation:
	// the first in canonical order with the largest match count.
	Orientation tile.Orientation
	Matches     int
	Roughness   int

	// Filled is the number of filled cells in the image.
	Filled int

	// All lists every orientation in canonical order.
	All [tile.NumOrientations]OrientationScan
}

// Scan searches img for p under all eight orientations of img.
// Returns ErrNilInput for a nil image or pattern.
func Scan(img *grid.Grid[byte], p *Pattern) (*ScanResult, error) {
	if img == nil || p == nil {
		return nil, ErrNilInput
	}
	res := &ScanResult{Filled: img.Count(tile.Filled)}
	best := -1
	for _, o := range tile.Orientations() {
		s := scanOne(o.Apply(img), p, res.Filled)
		s.Orientation = o
		res.All[o.Index()] = s
		if s.Matches > best {
			best = s.Matches
			res.Orientation, res.Matches, res.Roughness = o, s.Matches, s.Roughness
		}
	}

	return res, nil
}

// scanOne counts matches of p in view and the filled cells no match covers.
func scanOne(view *grid.Grid[byte], p *Pattern, filled int) OrientationScan {
	h, w := view.Shape()
	var s OrientationScan
	if p.rows > h || p.cols > w {
		s.Roughness = filled
		return s
	}
	marked, _ := grid.New[bool](h, w)
	covered := 0
	for r := 0; r+p.rows <= h; r++ {
		for c := 0; c+p.cols <= w; c++ {
			if !p.matchAt(view, r, c) {
				continue
			}
			s.Matches++
			for _, o := range p.offsets {
				if !marked.At(r+o[0], c+o[1]) {
					marked.Set(r+o[0], c+o[1], true)
					covered++
				}
			}
		}
	}
	s.Roughness = filled - covered

	return s
}
