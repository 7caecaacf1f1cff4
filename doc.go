// Package pathsketch is the model behind a grid sketching tool: draw walls
// freehand, join diagonal obstacle pairs, mark a start and an end, hand the
// problem to an external path solver and replay its answer onto the grid.
//
// What is in the box?
//
//	• Cell model: integer coordinates, sets, canonical pairs, 4/8-connectivity
//	• Rasterizer: Bresenham segments that cover every cell a drag crossed
//	• Grid store: Ordinary and Paired obstacles, endpoints, reconstructed paths
//	• Diagonal pairs: complete a 2×2 pattern by clicking its free corner
//	• Edge-list grammar: "--- Path N ---" sections of "(x,y) -> (x,y)" lines
//	• Stitcher: turn an unordered edge bag into one ordered walk, bounded
//
// Why this shape?
//
//   - Deterministic: every listing (obstacles, pairs, paths) comes back sorted
//     or in solver order.
//   - All-or-nothing: a solver answer that fails anywhere leaves the grid as it was.
//   - Quiet by default: grids log through a logrus.FieldLogger that discards
//     unless one is supplied.
//
// Packages:
//
//	cell            Cell, Set, Pair, Connectivity
//	raster          Line: the Bresenham rasterizer
//	grid            Grid aggregate: drawing, pairing, endpoints, ApplySolution
//	edgelist        Parse/Format of solver output, coordinate Normalizer
//	stitch          Stitch/All: edge bags to ordered paths
//	scene           TOML scene files replayed onto a Grid
//	cmd/pathsketch  problem, solve and check from the command line
//
// Quick ASCII example:
//
//	  x: 1 2 3 4
//	y1   S # . E
//	y2   a # a .
//	y3   . a . .
//
//	a wall at x=2 and the solver's path a walking around it.
package pathsketch
