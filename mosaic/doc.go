// Package mosaic turns a completed assembly.Arrangement into one composite
// image and searches it for a fixed pattern.
//
// Stitching: every placed tile is viewed in its assigned orientation, its
// outermost ring of cells is dropped, and the remaining (S−2)×(S−2) block is
// copied to block position (row, col). The image side is N·(S−2).
//
// Scanning: for each of the 8 orientations of the image (canonical order of
// tile.Orientations), the pattern is slid over every anchor where it fits.
// An anchor matches when every must-be-filled offset of the pattern is filled
// in the image; other pattern cells are wildcards. Cells covered by any match
// are marked, and
//
//	roughness = filled cells − marked cells
//
// The reported orientation is the first one reaching the largest match count.
// Zero matches in every orientation is a valid result: roughness then equals
// the number of filled cells.
//
// Blocks is the inverse of Stitch up to the discarded rings: it re-slices an
// image into its (S−2)×(S−2) blocks.
//
// Complexity:
//
//   - Stitch: O(N²·S²).
//   - Scan:   O(8 · H·W · P) for an H×W image and a pattern of P filled cells.
package mosaic
