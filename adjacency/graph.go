package adjacency

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/jigsaw/tile"
)

// Graph is the compatibility graph of a tile set. It is immutable once built.
type Graph struct {
	tiles   []*tile.Tile // sorted by id
	index   map[int]int  // id -> position in tiles
	matched map[int][tile.NumSides]bool
	links   []Link
	adj     map[int][]int // id -> sorted neighbour ids
}

// Build validates tiles and computes their compatibility graph.
// The result does not depend on the input order.
func Build(tiles []*tile.Tile) (*Graph, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	sorted := make([]*tile.Tile, len(tiles))
	copy(sorted, tiles)
	for i, t := range sorted {
		if t == nil {
			return nil, fmt.Errorf("tile #%d: %w", i, ErrNilTile)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID() < sorted[j].ID() })

	g := &Graph{
		tiles:   sorted,
		index:   make(map[int]int, len(sorted)),
		matched: make(map[int][tile.NumSides]bool, len(sorted)),
		adj:     make(map[int][]int, len(sorted)),
	}
	side := sorted[0].Side()
	for i, t := range sorted {
		if _, dup := g.index[t.ID()]; dup {
			return nil, fmt.Errorf("id %d: %w", t.ID(), ErrDuplicateID)
		}
		if t.Side() != side {
			return nil, fmt.Errorf("tile %d has side %d, want %d: %w", t.ID(), t.Side(), side, ErrMixedSides)
		}
		g.index[t.ID()] = i
	}

	edges := make([]tile.Edges, len(sorted))
	for i, t := range sorted {
		edges[i] = t.RawEdges()
	}

	// Ordered pairs drive the per-tile OR; unordered pairs (i<j) record links.
	var i, j int
	for i = 0; i < len(sorted); i++ {
		a := sorted[i].ID()
		var hits [tile.NumSides]bool
		for j = 0; j < len(sorted); j++ {
			if i == j {
				continue
			}
			linked := false
			for _, s := range tile.Sides {
				for _, u := range tile.Sides {
					if !tile.Compatible(edges[i][s], edges[j][u]) {
						continue
					}
					hits[s] = true
					linked = true
					if i < j {
						g.links = append(g.links, Link{
							From: a, To: sorted[j].ID(),
							FromSide: s, ToSide: u,
							Reversed: !tile.Conjoined(edges[i][s], edges[j][u]),
						})
					}
				}
			}
			if linked {
				g.adj[a] = append(g.adj[a], sorted[j].ID())
			}
		}
		g.matched[a] = hits
	}

	return g, nil
}

// Len returns the number of tiles.
func (g *Graph) Len() int { return len(g.tiles) }

// Tiles returns the tiles sorted by id. The slice is a copy; the tiles are shared.
func (g *Graph) Tiles() []*tile.Tile {
	out := make([]*tile.Tile, len(g.tiles))
	copy(out, g.tiles)

	return out
}

// Tile returns the tile with the given id.
func (g *Graph) Tile(id int) (*tile.Tile, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}

	return g.tiles[i], true
}

// Matched returns, per raw side of tile id, whether any other tile has a
// compatible edge.
func (g *Graph) Matched(id int) [tile.NumSides]bool { return g.matched[id] }

// Unmatched counts the raw sides of tile id with no compatible partner.
func (g *Graph) Unmatched(id int) int {
	n := 0
	for _, hit := range g.matched[id] {
		if !hit {
			n++
		}
	}

	return n
}

// Neighbors returns the ids of tiles sharing at least one compatible edge with id,
// in ascending order.
func (g *Graph) Neighbors(id int) []int {
	out := make([]int, len(g.adj[id]))
	copy(out, g.adj[id])

	return out
}

// Links returns every compatible edge pair, ordered by (From, To, FromSide, ToSide).
func (g *Graph) Links() []Link {
	out := make([]Link, len(g.links))
	copy(out, g.links)

	return out
}
