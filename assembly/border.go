package assembly

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/tile"
)

// Ring is the closed clockwise frame of an N×N arrangement. Placements[i]
// sits at Pos(i).
type Ring struct {
	Side       int
	Placements []Placement
}

// Pos returns the grid position of ring index i.
func (r *Ring) Pos(i int) Pos { return ringPos(r.Side, i) }

// Len returns the number of frame positions.
func (r *Ring) Len() int { return len(r.Placements) }

// ringState is one partial ring on the search stack. States never share slices.
type ringState struct {
	used []bool
	ring []slot
}

// extend returns a copy of s with c appended.
func (s ringState) extend(c slot) ringState {
	used := make([]bool, len(s.used))
	copy(used, s.used)
	used[c.tile] = true
	ring := make([]slot, len(s.ring), len(s.ring)+1)
	copy(ring, s.ring)

	return ringState{used: used, ring: append(ring, c)}
}

// Border lays out the frame of the square depth-first.
// Returns ErrNilInput, ErrOptionViolation, ErrNoArrangement, ErrStateBudget
// or the context's error.
func Border(g *adjacency.Graph, c *adjacency.Classification, opts ...Option) (*Ring, error) {
	e, err := newEngine(g, c, opts)
	if err != nil {
		return nil, err
	}
	ring, err := e.border()
	if err != nil {
		return nil, err
	}

	return e.ringOut(ring), nil
}

// start returns the anchor of the ring: the smallest corner, in the first
// orientation whose top and left sides face outward.
func (e *engine) start() (slot, error) {
	if len(e.corners) == 0 {
		return slot{}, fmt.Errorf("%w: no corner tile", ErrNoArrangement)
	}
	t := e.corners[0]
	want := facing(e.side, Pos{})
	for k := 0; k < tile.NumOrientations; k++ {
		if e.outward[t][k] == want {
			return slot{tile: t, orient: k}, nil
		}
	}

	return slot{}, fmt.Errorf("%w: corner %d cannot face top and left", ErrNoArrangement, e.tiles[t].ID())
}

// eligible reports whether tile t may stand at a frame position with the
// given outward sides.
func (e *engine) eligible(t int, want [tile.NumSides]bool) bool {
	outward := 0
	for _, w := range want {
		if w {
			outward++
		}
	}
	if outward >= 2 {
		return e.class[t] == adjacency.Corner
	}

	return e.class[t] == adjacency.Border
}

// border runs the ring search and returns the placements in clockwise order.
// Candidates are tried in ascending (tile id, orientation index) order.
func (e *engine) border() ([]slot, error) {
	e.reset()
	n := e.side
	total := ringLen(n)
	first, err := e.start()
	if err != nil {
		return nil, err
	}
	if err = e.admit(); err != nil {
		return nil, err
	}

	root := ringState{used: make([]bool, len(e.tiles))}.extend(first)
	e.opts.OnPlace(ringPos(n, 0), e.placement(first))
	e.opts.OnEnqueue(1)
	stack := []ringState{root}
	for len(stack) > 0 {
		if err = e.tick(); err != nil {
			return nil, err
		}
		cur := stack[len(stack)-1]
		stack[len(stack)-1] = ringState{}
		stack = stack[:len(stack)-1]
		if len(cur.ring) == total {
			e.opts.Logger.Debug("border ring closed", "tiles", total, "states", e.states)
			return cur.ring, nil
		}

		i := len(cur.ring)
		p := ringPos(n, i)
		want := facing(n, p)
		back := toward(p, ringPos(n, i-1))
		prev := cur.ring[i-1]
		closing := i == total-1
		var accepted []slot
		for t := range e.tiles {
			if cur.used[t] || !e.eligible(t, want) {
				continue
			}
			for k := 0; k < tile.NumOrientations; k++ {
				c := slot{tile: t, orient: k}
				if e.outward[t][k] != want || !e.joins(c, back, prev) {
					continue
				}
				if closing && !e.joins(c, toward(p, ringPos(n, 0)), cur.ring[0]) {
					continue
				}
				accepted = append(accepted, c)
				e.opts.OnPlace(p, e.placement(c))
			}
		}
		// push in reverse so the smallest candidate is explored first
		for j := len(accepted) - 1; j >= 0; j-- {
			if err = e.admit(); err != nil {
				return nil, err
			}
			next := cur.extend(accepted[j])
			e.opts.OnEnqueue(len(next.ring))
			stack = append(stack, next)
		}
	}

	return nil, fmt.Errorf("%w: border ring of %d tiles after %d states", ErrNoArrangement, total, e.states)
}

func (e *engine) ringOut(ring []slot) *Ring {
	out := &Ring{Side: e.side, Placements: make([]Placement, len(ring))}
	for i, s := range ring {
		out.Placements[i] = e.placement(s)
	}

	return out
}
