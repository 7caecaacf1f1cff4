package grid

import "github.com/katalvlaran/pathsketch/cell"

// Reachable reports whether end can be reached from start by moving between
// cells that are not Ordinary obstacles, under the grid connectivity.
// Paired cells are passable: the solver sees them as constrained, not
// disabled.
//
// Behavior:
//  1. Require both endpoints.
//  2. Breadth-first search from start over in-bounds, non-Ordinary cells.
//  3. Stop as soon as end is dequeued.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and the queue.
func (g *Grid) Reachable() (bool, error) {
	if g.start == nil {
		return false, ErrStartNotSet
	}
	if g.end == nil {
		return false, ErrEndNotSet
	}

	seen := make([]bool, g.width*g.height)
	src, dst := g.index(g.start.X, g.start.Y), g.index(g.end.X, g.end.Y)
	queue := []int{src}
	seen[src] = true
	offsets := g.conn.Offsets()

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			return true, nil
		}
		ux, uy := g.coordinate(u)
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if vx < 1 || vx > g.width || vy < 1 || vy > g.height {
				continue
			}
			vi := g.index(vx, vy)
			if seen[vi] || g.cells[cell.New(vx, vy)] == Ordinary {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return false, nil
}

// index maps 1-based (x,y) to a row-major index.
func (g *Grid) index(x, y int) int {
	return (y-1)*g.width + (x - 1)
}

// coordinate converts a row-major index back to 1-based (x,y).
func (g *Grid) coordinate(idx int) (x, y int) {
	return idx%g.width + 1, idx/g.width + 1
}
