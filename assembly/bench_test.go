package assembly_test

import (
	"testing"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/assembly"
	"github.com/katalvlaran/jigsaw/builder"
	"github.com/katalvlaran/jigsaw/tile"
)

func benchAssemble(b *testing.B, side int) {
	p, err := builder.Generate(side, 10, builder.WithSeed(int64(side)))
	if err != nil {
		b.Fatal(err)
	}
	tiles := make([]*tile.Tile, 0, len(p.Tiles))
	for id, cells := range p.Tiles {
		t, err := tile.New(id, cells)
		if err != nil {
			b.Fatal(err)
		}
		tiles = append(tiles, t)
	}
	g, err := adjacency.Build(tiles)
	if err != nil {
		b.Fatal(err)
	}
	c, err := adjacency.Classify(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = assembly.Assemble(g, c); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAssemble_3x3(b *testing.B)   { benchAssemble(b, 3) }
func BenchmarkAssemble_8x8(b *testing.B)   { benchAssemble(b, 8) }
func BenchmarkAssemble_10x10(b *testing.B) { benchAssemble(b, 10) }
