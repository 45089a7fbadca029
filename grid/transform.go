// SPDX-License-Identifier: MIT

// Package grid - pure transforms and extractions.
//
// Every function here allocates its result; none of them alias the receiver.
// Index formulas are spelled out per case so each branch can be checked
// against the drawings in grid_test.go.

package grid

import "fmt"

// Axis selects the direction of a flip.
type Axis int

const (
	// AxisRows reverses the order of rows (up/down mirror).
	AxisRows Axis = iota
	// AxisCols reverses the order of columns (left/right mirror).
	AxisCols
)

// Rot90 rotates g counterclockwise by k quarter turns and returns a new grid.
// k may be any integer; it is reduced mod 4. For odd k the result has shape
// (cols, rows).
//
//	k=1: out[i][j] = in[j][c-1-i]
//	k=2: out[i][j] = in[r-1-i][c-1-j]
//	k=3: out[i][j] = in[r-1-j][i]
//
// Complexity: O(r*c).
func (g *Grid[T]) Rot90(k int) *Grid[T] {
	k = ((k % 4) + 4) % 4
	if k == 0 {
		return g.Clone()
	}

	r, c := g.r, g.c
	out := &Grid[T]{r: r, c: c}
	if k%2 == 1 {
		out.r, out.c = c, r
	}
	out.data = make([]T, len(g.data))

	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			var v T
			switch k {
			case 1:
				v = g.data[j*c+(c-1-i)]
			case 2:
				v = g.data[(r-1-i)*c+(c-1-j)]
			case 3:
				v = g.data[(r-1-j)*c+i]
			}
			out.data[i*out.c+j] = v
		}
	}

	return out
}

// FlipUD returns a copy of g with the row order reversed.
func (g *Grid[T]) FlipUD() *Grid[T] {
	out := &Grid[T]{r: g.r, c: g.c, data: make([]T, len(g.data))}
	for i := 0; i < g.r; i++ {
		copy(out.data[i*g.c:(i+1)*g.c], g.data[(g.r-1-i)*g.c:(g.r-i)*g.c])
	}

	return out
}

// FlipLR returns a copy of g with the column order reversed.
func (g *Grid[T]) FlipLR() *Grid[T] {
	out := &Grid[T]{r: g.r, c: g.c, data: make([]T, len(g.data))}
	for i := 0; i < g.r; i++ {
		for j := 0; j < g.c; j++ {
			out.data[i*g.c+j] = g.data[i*g.c+(g.c-1-j)]
		}
	}

	return out
}

// Flip mirrors g along the given axis. Unknown axes yield ErrBadAxis.
func (g *Grid[T]) Flip(axis Axis) (*Grid[T], error) {
	switch axis {
	case AxisRows:
		return g.FlipUD(), nil
	case AxisCols:
		return g.FlipLR(), nil
	default:
		return nil, fmt.Errorf("Flip(%d): %w", axis, ErrBadAxis)
	}
}

// Transpose returns the (cols×rows) transpose of g.
func (g *Grid[T]) Transpose() *Grid[T] {
	out := &Grid[T]{r: g.c, c: g.r, data: make([]T, len(g.data))}
	for i := 0; i < g.r; i++ {
		for j := 0; j < g.c; j++ {
			out.data[j*out.c+i] = g.data[i*g.c+j]
		}
	}

	return out
}

// Sub copies the h×w window whose top-left corner is (r0, c0) into a new grid.
// It panics with ErrOutOfRange if the window does not fit inside g or if
// h or w is not positive.
// Complexity: O(h*w).
func (g *Grid[T]) Sub(r0, c0, h, w int) *Grid[T] {
	if h <= 0 || w <= 0 || !g.InBounds(r0, c0) || !g.InBounds(r0+h-1, c0+w-1) {
		panic(fmt.Errorf("%w (window %dx%d)", gridErrorf(ctxSub, r0, c0, ErrOutOfRange), h, w))
	}
	out := &Grid[T]{r: h, c: w, data: make([]T, h*w)}
	for i := 0; i < h; i++ {
		src := (r0+i)*g.c + c0
		copy(out.data[i*w:(i+1)*w], g.data[src:src+w])
	}

	return out
}

// Paste copies src into g with src's top-left cell landing on (r0, c0).
// It panics with ErrOutOfRange if src does not fit.
func (g *Grid[T]) Paste(r0, c0 int, src *Grid[T]) {
	if !g.InBounds(r0, c0) || !g.InBounds(r0+src.r-1, c0+src.c-1) {
		panic(gridErrorf(ctxSet, r0, c0, ErrOutOfRange))
	}
	for i := 0; i < src.r; i++ {
		dst := (r0+i)*g.c + c0
		copy(g.data[dst:dst+src.c], src.data[i*src.c:(i+1)*src.c])
	}
}

// Row returns a copy of row i.
func (g *Grid[T]) Row(i int) Vector[T] {
	if i < 0 || i >= g.r {
		panic(gridErrorf(ctxRow, i, 0, ErrOutOfRange))
	}
	v := make(Vector[T], g.c)
	copy(v, g.data[i*g.c:(i+1)*g.c])

	return v
}

// Col returns a copy of column j, read top to bottom.
func (g *Grid[T]) Col(j int) Vector[T] {
	if j < 0 || j >= g.c {
		panic(gridErrorf(ctxCol, 0, j, ErrOutOfRange))
	}
	v := make(Vector[T], g.r)
	for i := 0; i < g.r; i++ {
		v[i] = g.data[i*g.c+j]
	}

	return v
}
