// Package grid holds the mutable state of a path sketch: which cells are
// obstacles and of which category, the diagonal pair links, the start and
// end cells, and the most recently reconstructed solver paths.
//
// What:
//
//   - Grid is a single owned aggregate. Coordinates are 1-based:
//     1 ≤ x ≤ Width, 1 ≤ y ≤ Height, the numbering the solver uses.
//   - AddLine / RemoveLine apply a rasterized drag. Drawing never touches
//     the start cell and never re-tags a Paired cell; erasing never removes
//     a Paired cell.
//   - Stroke keeps the previous gesture sample so fast drags are covered.
//   - DiagonalMatch / AddPair / RemovePair manage paired obstacles: two
//     free cells on the diagonal of a 2×2 block whose other two cells are
//     Ordinary.
//   - ApplySolution parses solver output, stitches every section against
//     the live start and end, checks the walks against the grid, and
//     replaces Paths wholesale. On failure Paths is left untouched.
//   - Problem and Reachable feed the problem-description step.
//
// Why:
//
//   - Interactive sketching of obstacle maps for an external path solver.
//   - Turning the solver's edge lists back into drawable walks.
//
// Concurrency:
//
//	A Grid is not safe for concurrent use. Every operation is synchronous
//	and performs no I/O; callers serialize access.
//
// Options:
//
//   - WithLogger(l):        structured logger (default discards output).
//   - WithConnectivity(c):  adjacency for path checks and Reachable (default Conn8).
//   - WithNormalizer(n):    solver coordinate policy (default edgelist.Identity).
//
// Errors:
//
//   - ErrInvalidSize:  non-positive width or height.
//   - ErrOutOfBounds:  a cell outside the grid.
//   - ErrOccupied:     an endpoint was requested on an obstacle.
//   - ErrStartNotSet, ErrEndNotSet, ErrInvalidPath: from stitching.
//   - edgelist.ErrInvalidInput: unreadable solver output.
package grid
