// Package assembly lays classified tiles out on an N×N grid so that every
// pair of grid-adjacent tiles presents identical (conjoined) edges.
//
// What:
//
//   - Border: depth-first search over partial rings. The ring starts at
//     (0,0) with the smallest corner id, turned so its outward sides face top
//     and left, and walks clockwise along the top row, right column, bottom
//     row and left column. Each step tries every unplaced frame tile in every
//     orientation whose outward sides match the ring geometry and whose edge
//     toward the previous tile is conjoined with it. The ring closes when the
//     last tile is conjoined with the first.
//   - Interior: depth-first search with an explicit stack, filling positions
//     row-major from (1,1). A candidate must be conjoined with every placed
//     neighbour (border ring or earlier interior cell).
//   - Assemble: Border followed by Interior, yielding an Arrangement.
//
// Why:
//
//   - The frame is fixed by outward edges alone; splitting the search keeps
//     the interior search a plain row-major fill with at most four constraints
//     per cell.
//   - Every search state owns its own placement list and used-set (copied on
//     branch), so sibling branches never share mutable state.
//
// Options (functional, as DefaultOptions + With*):
//
//   - WithContext   cancellation, checked once per expanded state.
//   - WithMaxStates upper bound on states created per search (0 = automatic:
//     64 × tiles × 8). Every pushed state counts, so the worklist never
//     outgrows the bound; exceeding it fails with ErrStateBudget.
//   - WithLogger    debug-level progress; discarded by default.
//   - WithOnEnqueue / WithOnPlace  observation hooks.
//
// Complexity:
//
//   - Prefetch: O(T · 8 · S²) for T tiles of side S.
//   - Each expanded state tries O(T · 8) candidates at O(S) per edge test.
//
// Errors:
//
//   - ErrNilInput         nil graph or classification.
//   - ErrOptionViolation  invalid option value.
//   - ErrNoArrangement    the search space is exhausted (border or interior).
//   - ErrStateBudget      the state budget is exceeded.
//   - ErrBadArrangement, ErrNotConjoined  from NewArrangement / Verify.
//   - context errors      from a cancelled Ctx.
package assembly
