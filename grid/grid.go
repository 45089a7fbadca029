// SPDX-License-Identifier: MIT

// Package grid - row-major storage & accessors.
//
// Purpose:
//   - Keep cells in one flat buffer with the explicit index formula i*cols + j.
//   - Fail loudly on programmer errors: At/Set panic on out-of-range indices.
//   - Deep-copy on construction so callers cannot mutate a grid through the
//     slices they passed in.

package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular, row-major 2-D array of comparable cells.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
//
// The zero value is not usable; construct with New or FromRows.
type Grid[T comparable] struct {
	r, c int
	data []T
}

// New creates an r×c grid with every cell set to the zero value of T.
// Returns ErrBadShape if rows<=0 or cols<=0.
// Complexity: O(r*c).
func New[T comparable](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Filled creates an r×c grid with every cell set to v.
func Filled[T comparable](rows, cols int, v T) (*Grid[T], error) {
	g, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = v
	}

	return g, nil
}

// FromRows builds a grid from a non-empty, rectangular slice of rows.
// The input is deep-copied.
// Returns ErrBadShape for empty input and ErrNonRectangular for ragged rows.
// Complexity: O(r*c).
func FromRows[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	g := &Grid[T]{r: r, c: c, data: make([]T, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has length %d, want %d: %w", i, len(row), c, ErrNonRectangular)
		}
		g.data = append(g.data, row...)
	}

	return g, nil
}

// FromStrings builds a byte grid from equal-length strings, one per row.
// It is the natural constructor for '#'/'.' symbol grids.
func FromStrings(lines ...string) (*Grid[byte], error) {
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(line)
	}

	return FromRows(rows)
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.r }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.c }

// Shape returns (rows, cols).
func (g *Grid[T]) Shape() (int, int) { return g.r, g.c }

// Len returns the number of cells (rows*cols).
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds reports whether (i, j) addresses a cell of g.
// Complexity: O(1).
func (g *Grid[T]) InBounds(i, j int) bool {
	return i >= 0 && i < g.r && j >= 0 && j < g.c
}

// offset computes the flat index for (i, j) or panics with ErrOutOfRange.
func (g *Grid[T]) offset(method string, i, j int) int {
	if !g.InBounds(i, j) {
		panic(gridErrorf(method, i, j, ErrOutOfRange))
	}

	return i*g.c + j
}

// At returns the cell at (i, j). It panics if (i, j) is out of range.
// Complexity: O(1).
func (g *Grid[T]) At(i, j int) T {
	return g.data[g.offset(ctxAt, i, j)]
}

// Set assigns v to the cell at (i, j). It panics if (i, j) is out of range.
// Set is the only mutating method; every transform returns a fresh grid.
// Complexity: O(1).
func (g *Grid[T]) Set(i, j int, v T) {
	g.data[g.offset(ctxSet, i, j)] = v
}

// Clone returns a deep copy of g.
// Complexity: O(r*c).
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{r: g.r, c: g.c, data: data}
}

// Equal reports whether g and o have the same shape and identical cells.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.r != o.r || g.c != o.c {
		return false
	}
	for k := range g.data {
		if g.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Count returns how many cells equal v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, x := range g.data {
		if x == v {
			n++
		}
	}

	return n
}

// ToRows returns a freshly allocated [][]T copy of g.
func (g *Grid[T]) ToRows() [][]T {
	out := make([][]T, g.r)
	for i := 0; i < g.r; i++ {
		row := make([]T, g.c)
		copy(row, g.data[i*g.c:(i+1)*g.c])
		out[i] = row
	}

	return out
}

// String renders g one row per line; byte and rune cells print as characters.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for i := 0; i < g.r; i++ {
		for j := 0; j < g.c; j++ {
			switch v := any(g.data[i*g.c+j]).(type) {
			case byte:
				sb.WriteByte(v)
			case rune:
				sb.WriteRune(v)
			default:
				fmt.Fprint(&sb, v)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
