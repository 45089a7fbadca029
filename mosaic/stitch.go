package mosaic

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/assembly"
	"github.com/katalvlaran/jigsaw/grid"
)

// Stitch builds the composite image of a.
// Returns ErrNilInput for a nil arrangement, ErrNoInterior for tiles of side < 3.
func Stitch(a *assembly.Arrangement) (*grid.Grid[byte], error) {
	if a == nil {
		return nil, ErrNilInput
	}
	inner := a.TileSide() - 2
	if inner < 1 {
		return nil, fmt.Errorf("%w: tile side %d", ErrNoInterior, a.TileSide())
	}
	n := a.Side()
	img, err := grid.New[byte](n*inner, n*inner)
	if err != nil {
		return nil, err
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			view := a.View(assembly.Pos{Row: r, Col: c})
			img.Paste(r*inner, c*inner, view.Sub(1, 1, inner, inner))
		}
	}

	return img, nil
}

// Blocks re-slices img into side×side blocks, row-major: out[r][c] is the
// block at block position (r, c). Blocks are independent copies.
func Blocks(img *grid.Grid[byte], side int) ([][]*grid.Grid[byte], error) {
	if img == nil {
		return nil, ErrNilInput
	}
	h, w := img.Shape()
	if side < 1 || h%side != 0 || w%side != 0 {
		return nil, fmt.Errorf("%w: %dx%d by %d", ErrBlockSize, h, w, side)
	}
	out := make([][]*grid.Grid[byte], h/side)
	for r := range out {
		out[r] = make([]*grid.Grid[byte], w/side)
		for c := range out[r] {
			out[r][c] = img.Sub(r*side, c*side, side, side)
		}
	}

	return out, nil
}
