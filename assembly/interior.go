package assembly

import (
	"fmt"

	"github.com/katalvlaran/jigsaw/adjacency"
	"github.com/katalvlaran/jigsaw/tile"
)

// fillState is one partial interior: placed[k] covers the k-th interior cell
// in row-major order. States never share slices.
type fillState struct {
	used   []bool
	placed []slot
}

// extend returns a copy of s with c appended.
func (s fillState) extend(c slot) fillState {
	used := make([]bool, len(s.used))
	copy(used, s.used)
	used[c.tile] = true
	placed := make([]slot, len(s.placed), len(s.placed)+1)
	copy(placed, s.placed)

	return fillState{used: used, placed: append(placed, c)}
}

// Interior completes a closed ring into a full Arrangement depth-first.
// The ring must come from Border on the same graph and classification
// (otherwise ErrBadArrangement).
func Interior(g *adjacency.Graph, c *adjacency.Classification, ring *Ring, opts ...Option) (*Arrangement, error) {
	e, err := newEngine(g, c, opts)
	if err != nil {
		return nil, err
	}
	frame, err := e.ringIn(ring)
	if err != nil {
		return nil, err
	}
	inner, err := e.interior(frame)
	if err != nil {
		return nil, err
	}

	return e.arrangement(frame, inner), nil
}

// ringIn converts a public Ring back to engine slots.
func (e *engine) ringIn(r *Ring) ([]slot, error) {
	if r == nil || r.Side != e.side || len(r.Placements) != ringLen(e.side) {
		return nil, fmt.Errorf("%w: ring does not fit a %d×%d grid", ErrBadArrangement, e.side, e.side)
	}
	out := make([]slot, len(r.Placements))
	for i, p := range r.Placements {
		s, ok := e.slotOf(p)
		if !ok {
			return nil, fmt.Errorf("%w: unknown tile %d in ring", ErrBadArrangement, p.ID)
		}
		out[i] = s
	}

	return out, nil
}

// interior fills the cells inside the ring, row-major from (1,1). Candidates
// are tried in ascending (tile id, orientation index) order.
func (e *engine) interior(frame []slot) ([]slot, error) {
	e.reset()
	n := e.side
	if n <= 2 {
		return nil, nil
	}
	inner := n - 2
	cells := inner * inner

	border := make(map[Pos]slot, len(frame))
	root := fillState{used: make([]bool, len(e.tiles))}
	for i, s := range frame {
		border[ringPos(n, i)] = s
		root.used[s.tile] = true
	}
	// at returns the placement at q in state st, if any.
	at := func(st fillState, q Pos) (slot, bool) {
		if s, ok := border[q]; ok {
			return s, true
		}
		k := (q.Row-1)*inner + q.Col - 1
		if q.Row < 1 || q.Row > inner || q.Col < 1 || q.Col > inner || k >= len(st.placed) {
			return slot{}, false
		}

		return st.placed[k], true
	}

	if err := e.admit(); err != nil {
		return nil, err
	}
	stack := []fillState{root}
	e.opts.OnEnqueue(len(frame))
	for len(stack) > 0 {
		if err := e.tick(); err != nil {
			return nil, err
		}
		cur := stack[len(stack)-1]
		stack[len(stack)-1] = fillState{}
		stack = stack[:len(stack)-1]
		if len(cur.placed) == cells {
			e.opts.Logger.Debug("interior filled", "cells", cells, "states", e.states)
			return cur.placed, nil
		}

		k := len(cur.placed)
		p := Pos{Row: 1 + k/inner, Col: 1 + k%inner}
		var accepted []slot
		for t := range e.tiles {
			if cur.used[t] || e.class[t] != adjacency.Interior {
				continue
			}
			for o := 0; o < tile.NumOrientations; o++ {
				c := slot{tile: t, orient: o}
				if e.fits(c, p, func(q Pos) (slot, bool) { return at(cur, q) }) {
					accepted = append(accepted, c)
					e.opts.OnPlace(p, e.placement(c))
				}
			}
		}
		// push in reverse so the smallest candidate is explored first
		for j := len(accepted) - 1; j >= 0; j-- {
			if err := e.admit(); err != nil {
				return nil, err
			}
			next := cur.extend(accepted[j])
			e.opts.OnEnqueue(len(frame) + len(next.placed))
			stack = append(stack, next)
		}
	}

	return nil, fmt.Errorf("%w: interior of %d cells after %d states", ErrNoArrangement, cells, e.states)
}

// fits reports whether c at p is conjoined with every placed neighbour.
func (e *engine) fits(c slot, p Pos, at func(Pos) (slot, bool)) bool {
	for _, s := range tile.Sides {
		if nb, ok := at(p.step(s)); ok && !e.joins(c, s, nb) {
			return false
		}
	}

	return true
}
