package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/builder"
	"github.com/katalvlaran/jigsaw/tile"
)

// ExampleClassify sorts the published 3×3 puzzle into corners, borders and
// the single interior tile.
func ExampleClassify() {
	var tiles []*tile.Tile
	for id, g := range builder.Reference().Tiles {
		t, _ := tile.New(id, g)
		tiles = append(tiles, t)
	}
	g, _ := adjacency.Build(tiles)
	c, err := adjacency.Classify(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	product, _ := c.CornerProduct()

	fmt.Println("side:", c.Side)
	fmt.Println("corners:", c.Corners)
	fmt.Println("borders:", c.Borders)
	fmt.Println("interior:", c.Interior)
	fmt.Println("neighbours of 1951:", g.Neighbors(1951))
	fmt.Println("product:", product)
	// Output:
	// side: 3
	// corners: [1171 1951 2971 3079]
	// borders: [1489 2311 2473 2729]
	// interior: [1427]
	// neighbours of 1951: [2311 2729]
	// product: 20899048083289
}
