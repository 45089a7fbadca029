// Package builder produces deterministic jigsaw fixtures: randomly generated
// puzzles with a known solution, and the published 3×3 reference puzzle.
//
// What:
//
//   - Generate(side, tileSide, opts...) paints a picture, cuts it into
//     side×side square tiles whose neighbours share their border cells,
//     turns and mirrors every tile at random and shuffles the ids.
//   - The expected composite image (tile interiors in true orientation) and
//     the true layout are returned alongside the tiles.
//   - WithPattern stamps non-overlapping copies of a pattern into the picture
//     so pattern scans have a known answer.
//   - Reference() returns the 9-tile published example together with its
//     known answers.
//
// Determinism:
//
//   - Same (side, tileSide, options, seed) ⇒ identical puzzle. Retries after a
//     rejected draw consume the same RNG stream, so they are reproducible too.
//
// Uniqueness guarantee:
//
//   - Every generated puzzle has pairwise-distinct, non-palindromic edges
//     (up to reversal) apart from the true shared borders, so its solution is
//     unique up to a global rotation/reflection.
package builder
