package mosaic_test

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/mosaic"
	"github.com/katalvlaran/jigsaw/tile"
)

// ExampleScan finds an L-shaped pattern that only appears once the image is turned.
func ExampleScan() {
	img, _ := grid.FromStrings(
		"..#.",
		"###.",
		"....",
	)
	shape, _ := grid.FromStrings(
		"#.",
		"#.",
		"##",
	)
	p, _ := mosaic.NewPattern(shape, tile.Filled)

	res, _ := mosaic.Scan(img, p)
	fmt.Println("orientation:", res.Orientation)
	fmt.Println("matches:", res.Matches)
	fmt.Println("roughness:", res.Roughness)
	// Output:
	// orientation: rot3
	// matches: 1
	// roughness: 0
}
