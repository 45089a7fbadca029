// Package grid provides a small, generic 2-D array for symbol grids.
//
// What:
//
//   - Grid[T] is a row-major rectangular array of comparable cells.
//   - Vector[T] is a 1-D slice of cells extracted from a grid (a row, a column,
//     or a tile edge).
//   - Transforms (Rot90, FlipUD, FlipLR, Flip, Transpose) and extractions
//     (Row, Col, Sub, Clone) are pure: they allocate a new grid and never alias
//     the receiver's storage.
//
// Why:
//
//   - Jigsaw tiles are re-oriented thousands of times during assembly; every
//     orientation must be derived from the raw grid without drift, and search
//     branches must never share mutable state.
//
// Laws (enforced in tests):
//
//   - g.Rot90(k) == g.Rot90(1) applied k times (k taken mod 4)
//   - g.Rot90(4) == g
//   - g.FlipUD().FlipUD() == g, g.FlipLR().FlipLR() == g
//   - g.Rot90(k).Rot90(4-k) == g
//
// Rotation is counterclockwise, matching the convention of numpy.rot90.
//
// Errors:
//
//   - ErrBadShape: a requested shape has a non-positive dimension.
//   - ErrNonRectangular: rows of differing lengths were supplied.
//   - ErrOutOfRange: an index is outside the grid. At, Set and Sub panic with
//     this sentinel wrapped in context; out-of-range access is a programmer error.
//   - ErrBadAxis: Flip was asked for an axis other than AxisRows/AxisCols.
//
// Complexity:
//
//   - New/Clone/transforms: O(r*c) time and memory.
//   - At/Set: O(1).
package grid
