// Package raster converts a drag segment between two grid cells into the
// discrete set of cells the segment touches.
//
// What:
//
//   - Line walks from one cell to another with integer Bresenham stepping.
//   - The error term is compared against dy and dx independently, so one
//     iteration may advance both axes. Consecutive cells are therefore
//     8-connected and no cell is skipped.
//   - A skip predicate excludes individual cells (the grid uses it to keep
//     freehand drawing off the designated start cell).
//
// Complexity:
//
//   - Line: O(max(|dx|,|dy|)) time and memory.
package raster

import "github.com/katalvlaran/pathsketch/cell"

// Line returns the cells on the segment from -> to, both ends included,
// except those for which skip returns true. skip may be nil.
//
// The result always has max(|dx|,|dy|)+1 members minus skipped cells, and
// every member lies inside the bounding box of from and to.
func Line(from, to cell.Cell, skip func(cell.Cell) bool) cell.Set {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)

	sx, sy := -1, -1
	if from.X < to.X {
		sx = 1
	}
	if from.Y < to.Y {
		sy = 1
	}

	err := dx + dy
	out := make(cell.Set, max(dx, -dy)+1)
	keep := func(c cell.Cell) {
		if skip == nil || !skip(c) {
			out.Add(c)
		}
	}

	cur := from
	keep(cur)
	for cur != to {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			cur.X += sx
		}
		if e2 <= dx {
			err += dx
			cur.Y += sy
		}
		keep(cur)
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
