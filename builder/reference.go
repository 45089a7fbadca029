// SPDX-License-Identifier: MIT
// Package: jigsaw/builder
//
// reference.go - the published 3×3 example puzzle and its known answers.

package builder

import "github.com/katalvlaran/jigsaw/grid"

// Known answers for Reference().
const (
	// ReferenceCornerProduct is the product of the four corner ids.
	ReferenceCornerProduct uint64 = 20899048083289
	// ReferenceMatches is the number of sea monsters in the correctly oriented image.
	ReferenceMatches = 2
	// ReferenceRoughness is the count of filled cells not covered by a sea monster.
	ReferenceRoughness = 273
)

var referenceTiles = map[int][]string{
	2311: {
		"..##.#..#.",
		"##..#.....",
		"#...##..#.",
		"####.#...#",
		"##.##.###.",
		"##...#.###",
		".#.#.#..##",
		"..#....#..",
		"###...#.#.",
		"..###..###",
	},
	1951: {
		"#.##...##.",
		"#.####...#",
		".....#..##",
		"#...######",
		".##.#....#",
		".###.#####",
		"###.##.##.",
		".###....#.",
		"..#.#..#.#",
		"#...##.#..",
	},
	1171: {
		"####...##.",
		"#..##.#..#",
		"##.#..#.#.",
		".###.####.",
		"..###.####",
		".##....##.",
		".#...####.",
		"#.##.####.",
		"####..#...",
		".....##...",
	},
	1427: {
		"###.##.#..",
		".#..#.##..",
		".#.##.#..#",
		"#.#.#.##.#",
		"....#...##",
		"...##..##.",
		"...#.#####",
		".#.####.#.",
		"..#..###.#",
		"..##.#..#.",
	},
	1489: {
		"##.#.#....",
		"..##...#..",
		".##..##...",
		"..#...#...",
		"#####...#.",
		"#..#.#.#.#",
		"...#.#.#..",
		"##.#...##.",
		"..##.##.##",
		"###.##.#..",
	},
	2473: {
		"#....####.",
		"#..#.##...",
		"#.##..#...",
		"######.#.#",
		".#...#.#.#",
		".#########",
		".###.#..#.",
		"########.#",
		"##...##.#.",
		"..###.#.#.",
	},
	2971: {
		"..#.#....#",
		"#...###...",
		"#.#.###...",
		"##.##..#..",
		".#####..##",
		".#..####.#",
		"#..#.#..#.",
		"..####.###",
		"..#.#.###.",
		"...#.#.#.#",
	},
	2729: {
		"...#.#.#.#",
		"####.#....",
		"..#.#.....",
		"....#..#.#",
		".##..##.#.",
		".#.####...",
		"####.#.#..",
		"##.####...",
		"##..#.##..",
		"#.##...##.",
	},
	3079: {
		"#.#.#####.",
		".#..######",
		"..#.......",
		"######....",
		"####.#..#.",
		".#...#.##.",
		"#.#####.##",
		"..#.###...",
		"..#.......",
		"..#.###...",
	},
}

// Reference returns the published 9-tile example (tiles of side 10).
// Layout, Turns and Image are unknown for this fixture and left nil.
func Reference() *Puzzle {
	p := &Puzzle{
		Side:     3,
		TileSide: 10,
		Tiles:    make(map[int]*grid.Grid[byte], len(referenceTiles)),
	}
	for id, lines := range referenceTiles {
		g, err := grid.FromStrings(lines...)
		if err != nil {
			panic(err) // static data
		}
		p.Tiles[id] = g
	}

	return p
}
