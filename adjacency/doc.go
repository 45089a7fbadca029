// Package adjacency analyses which tile edges could physically join and
// classifies tiles as corner, border or interior pieces.
//
// What:
//
//   - Graph treats tiles as vertices and every compatible pair of edges
//     (equal forward or reversed, orientation unknown) as a Link.
//   - Each tile gets a 4-bit "matched" vector over its raw sides: the logical
//     OR of compatibility against every other tile.
//   - Classify counts the unmatched sides: 2 → Corner, 1 → Border, 0 → Interior,
//     and checks the counts against an N×N square.
//
// Why:
//
//   - The outward sides of the assembled picture are exactly the edges no
//     other tile can meet. Counting them identifies the frame before any
//     placement search starts, and the corner ids alone answer the first
//     question asked of a puzzle (their product).
//
// Complexity:
//
//   - Build:    O(T² · 16 · S) for T tiles of side S.
//   - Classify: O(T).
//
// Errors:
//
//   - ErrNoTiles, ErrNilTile, ErrDuplicateID, ErrMixedSides: invalid input to Build.
//   - ErrMalformed: structural classification failure, wrapping one of
//     ErrNotSquare, ErrTooManyUnmatched, ErrClassCount.
//   - ErrOverflow, ErrNegativeID: CornerProduct cannot be represented in uint64.
package adjacency
