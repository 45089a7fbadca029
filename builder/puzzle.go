// SPDX-License-Identifier: MIT
// Package: jigsaw/builder
//
// puzzle.go - Generate: solvable puzzles with a known answer.
//
// Construction, per attempt:
//  1. paint   – picture of side*(tileSide-2) cells, filled with WithDensity.
//  2. stamp   – pattern copies on a fixed lattice (rows stepped by pattern
//     height + 1, alternating left/right alignment).
//  3. weave   – canvas of side*(tileSide-1)+1 cells: every (tileSide-1)-th
//     row and column is a border line drawn segment by segment so that no
//     two segments agree up to reversal; the rest is the picture.
//  4. cut     – tile (r,c) is the canvas window at (r*(tileSide-1), c*(tileSide-1)),
//     so horizontally/vertically adjacent tiles share one line of cells.
//  5. check   – reject the draw unless every edge is non-palindromic and
//     only true neighbours share an edge (up to reversal).
//  6. scramble – random orientation per tile, shuffled ids.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/tile"
)

// Puzzle is a generated tile set together with its solution.
type Puzzle struct {
	// Side is the number of tiles along each side of the square.
	Side int
	// TileSide is the side length of each tile in cells.
	TileSide int
	// Tiles maps tile id to its (turned) raw grid, as a parser would deliver it.
	Tiles map[int]*grid.Grid[byte]
	// Layout[r][c] is the id of the tile whose true position is (r,c).
	Layout [][]int
	// Turns records the orientation applied to each tile's true view.
	Turns map[int]tile.Orientation
	// Image is the expected composite picture in true orientation.
	Image *grid.Grid[byte]
	// Stamped is the number of pattern copies painted into Image.
	Stamped int
}

// Generate builds a side×side puzzle of tileSide×tileSide tiles.
// Errors: ErrTooSmall, ErrPatternFit, ErrConstructFailed.
func Generate(side, tileSide int, opts ...Option) (*Puzzle, error) {
	if side < 1 {
		return nil, fmt.Errorf("Generate: side=%d (must be ≥ 1): %w", side, ErrTooSmall)
	}
	if tileSide < tile.MinSide {
		return nil, fmt.Errorf("Generate: tileSide=%d (must be ≥ %d): %w", tileSide, tile.MinSide, ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)

	inner := tileSide - 2
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		picture := paint(cfg.rng, side*inner, cfg.density)
		stamped, err := stamp(picture, cfg.pattern, cfg.copies)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		canvas, ok := weave(cfg.rng, picture, side, tileSide)
		if !ok {
			continue
		}
		blocks := cut(canvas, side, tileSide)
		if !distinctEdges(blocks, side) {
			continue
		}

		return scramble(cfg, blocks, side, tileSide, picture, stamped), nil
	}

	return nil, fmt.Errorf("Generate: %d attempts: %w", cfg.maxAttempts, ErrConstructFailed)
}

func draw(rng *rand.Rand, p float64) byte {
	if rng.Float64() < p {
		return tile.Filled
	}

	return tile.Empty
}

// paint returns an n×n picture with cells filled with probability p.
func paint(rng *rand.Rand, n int, p float64) *grid.Grid[byte] {
	g, _ := grid.Filled(n, n, tile.Empty)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Set(i, j, draw(rng, p))
		}
	}

	return g
}

// stamp paints copies of pattern's filled cells into picture.
// Copy k is anchored at row k*(h+1), left-aligned for even k and
// right-aligned for odd k.
func stamp(picture, pattern *grid.Grid[byte], copies int) (int, error) {
	if pattern == nil || copies == 0 {
		return 0, nil
	}
	n := picture.Rows()
	h, w := pattern.Shape()
	if w > n || copies*(h+1)-1 > n {
		return 0, fmt.Errorf("%d copies of %dx%d into %dx%d: %w", copies, h, w, n, n, ErrPatternFit)
	}
	for k := 0; k < copies; k++ {
		r0, c0 := k*(h+1), 0
		if k%2 == 1 {
			c0 = n - w
		}
		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				if pattern.At(i, j) == tile.Filled {
					picture.Set(r0+i, c0+j, tile.Filled)
				}
			}
		}
	}

	return copies, nil
}

// weave interleaves border lines with the picture. Lattice cells (where a
// row line crosses a column line) are drawn once; the cells between them are
// redrawn until the segment reads differently both ways and differs from
// every segment drawn before. It reports false when a segment cannot be made
// unique within segmentTries draws.
func weave(rng *rand.Rand, picture *grid.Grid[byte], side, tileSide int) (*grid.Grid[byte], bool) {
	step := tileSide - 1
	inner := tileSide - 2
	n := side*step + 1
	canvas, _ := grid.Filled(n, n, tile.Empty)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case y%step == 0 && x%step == 0:
				canvas.Set(y, x, draw(rng, borderDensity))
			case y%step != 0 && x%step != 0:
				canvas.Set(y, x, picture.At((y/step)*inner+y%step-1, (x/step)*inner+x%step-1))
			}
		}
	}

	used := make(map[string]bool, 2*side*(side+1))
	for line := 0; line <= side; line++ {
		for seg := 0; seg < side; seg++ {
			for _, horizontal := range [2]bool{true, false} {
				if !drawSegment(rng, canvas, used, horizontal, line*step, seg*step, tileSide) {
					return nil, false
				}
			}
		}
	}

	return canvas, true
}

// drawSegment fills the free cells of one border segment starting at
// (fixed, start) along a row (horizontal) or column.
func drawSegment(rng *rand.Rand, canvas *grid.Grid[byte], used map[string]bool, horizontal bool, fixed, start, length int) bool {
	cell := func(k int) (int, int) {
		if horizontal {
			return fixed, start + k
		}
		return start + k, fixed
	}
	edge := make(tile.Edge, length)
	for try := 0; try < segmentTries; try++ {
		for k := 0; k < length; k++ {
			i, j := cell(k)
			if k > 0 && k < length-1 {
				canvas.Set(i, j, draw(rng, borderDensity))
			}
			edge[k] = canvas.At(i, j)
		}
		key, pal := edgeKey(edge)
		if !pal && !used[key] {
			used[key] = true
			return true
		}
	}

	return false
}

// cut slices the canvas into overlapping tiles, row-major.
func cut(canvas *grid.Grid[byte], side, tileSide int) []*grid.Grid[byte] {
	step := tileSide - 1
	blocks := make([]*grid.Grid[byte], 0, side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			blocks = append(blocks, canvas.Sub(r*step, c*step, tileSide, tileSide))
		}
	}

	return blocks
}

// edgeKey identifies an edge up to reversal.
func edgeKey(e tile.Edge) (key string, palindrome bool) {
	fwd, rev := string([]byte(e)), string([]byte(e.Reverse()))
	if rev < fwd {
		return rev, fwd == rev
	}

	return fwd, fwd == rev
}

// distinctEdges accepts a cut when no edge is a palindrome, no edge key occurs
// more than twice, and exactly the 2·side·(side−1) true shared borders occur twice.
func distinctEdges(blocks []*grid.Grid[byte], side int) bool {
	counts := make(map[string]int, 4*len(blocks))
	for _, b := range blocks {
		for _, e := range tile.EdgesOf(b) {
			key, pal := edgeKey(e)
			if pal {
				return false
			}
			counts[key]++
		}
	}
	shared := 0
	for _, n := range counts {
		switch {
		case n > 2:
			return false
		case n == 2:
			shared++
		}
	}

	return shared == 2*side*(side-1)
}

// scramble turns every block, assigns shuffled ids and records the truth.
func scramble(cfg builderConfig, blocks []*grid.Grid[byte], side, tileSide int, picture *grid.Grid[byte], stamped int) *Puzzle {
	n := side * side
	perm := cfg.rng.Perm(n)
	p := &Puzzle{
		Side:     side,
		TileSide: tileSide,
		Tiles:    make(map[int]*grid.Grid[byte], n),
		Layout:   make([][]int, side),
		Turns:    make(map[int]tile.Orientation, n),
		Image:    picture,
		Stamped:  stamped,
	}
	for r := 0; r < side; r++ {
		p.Layout[r] = make([]int, side)
		for c := 0; c < side; c++ {
			k := r*side + c
			id := cfg.firstID + perm[k]
			o := tile.Identity
			if !cfg.unturned {
				o = tile.FromIndex(cfg.rng.Intn(tile.NumOrientations))
			}
			p.Layout[r][c] = id
			p.Turns[id] = o
			p.Tiles[id] = o.Apply(blocks[k])
		}
	}

	return p
}
