package jigsaw_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/jigsaw"
	"github.com/katalvlaran/jigsaw/builder"
	"github.com/katalvlaran/jigsaw/mosaic"
)

func BenchmarkReconstruct_Reference(b *testing.B) {
	raw := builder.Reference().Tiles
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jigsaw.Reconstruct(context.Background(), raw, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReconstruct_8x8(b *testing.B) {
	p, err := builder.Generate(8, 10, builder.WithPattern(mosaic.Monster().Grid(), 6))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = jigsaw.Reconstruct(context.Background(), p.Tiles, nil); err != nil {
			b.Fatal(err)
		}
	}
}
