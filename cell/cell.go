// Package cell defines the atomic addressable unit of a sketch grid:
// an immutable integer coordinate with value equality and a total order.
//
// Cell values are small, comparable structs. They are used directly as
// map keys (Set, successor maps, pair links) and sorted with Compare
// wherever a deterministic order is required.
//
// Coordinate bounds are owned by the grid, not by the cell.
package cell

import (
	"fmt"
	"sort"
)

// Cell is a grid coordinate. The zero value is the cell (0,0).
type Cell struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
}

// New returns the cell at (x, y).
func New(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Compare orders cells by X, then by Y.
// Returns -1 if a < b, 0 if a == b, +1 if a > b.
// Complexity: O(1).
func Compare(a, b Cell) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

// Less reports whether c sorts before o.
func (c Cell) Less(o Cell) bool {
	return Compare(c, o) < 0
}

// Add returns c translated by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String renders the cell as "(x,y)", the literal shape used by solver output.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Sort orders cells in place by Compare.
// Complexity: O(n log n).
func Sort(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
}
