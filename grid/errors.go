// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: " so it can be grepped in logs.
// Callers match with errors.Is; context is added with fmt.Errorf("...: %w").

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrNonRectangular indicates that the rows handed to FromRows differ in length.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At, Set and Sub panic with this sentinel.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrBadAxis indicates an unknown flip axis.
	ErrBadAxis = errors.New("grid: invalid axis")
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxSub = "Sub"
	ctxRow = "Row"
	ctxCol = "Col"
)

// gridErrorf wraps err with a uniform Grid context and call-site indices.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
