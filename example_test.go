package jigsaw_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/jigsaw"
	"github.com/katalvlaran/jigsaw/builder"
)

// ExampleReconstruct solves the published 3×3 puzzle.
func ExampleReconstruct() {
	res, err := jigsaw.Reconstruct(context.Background(), builder.Reference().Tiles, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("A:", res.CornerProduct)
	fmt.Println("B:", res.Roughness)
	// Output:
	// A: 20899048083289
	// B: 273
}
