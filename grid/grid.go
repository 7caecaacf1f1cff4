package grid

import (
	"fmt"

	"github.com/katalvlaran/pathsketch/cell"
	"github.com/katalvlaran/pathsketch/edgelist"
	"github.com/sirupsen/logrus"
)

// New constructs an empty width×height Grid.
// Returns ErrInvalidSize if either dimension is not positive.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	g := &Grid{
		width:     width,
		height:    height,
		cells:     make(map[cell.Cell]Category),
		links:     make(links),
		conn:      cell.Conn8,
		normalize: edgelist.Identity,
		log:       discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Connectivity returns the adjacency used for path checks.
func (g *Grid) Connectivity() cell.Connectivity { return g.conn }

// Contains reports whether c lies within 1..Width × 1..Height.
// Complexity: O(1).
func (g *Grid) Contains(c cell.Cell) bool {
	return c.X >= 1 && c.X <= g.width && c.Y >= 1 && c.Y <= g.height
}

// Category returns the category of an occupied cell; ok is false for free cells.
func (g *Grid) Category(c cell.Cell) (cat Category, ok bool) {
	cat, ok = g.cells[c]
	return cat, ok
}

// IsOccupied reports whether c holds an obstacle of any category.
func (g *Grid) IsOccupied(c cell.Cell) bool {
	_, ok := g.cells[c]
	return ok
}

// IsOrdinary reports whether c is an Ordinary obstacle.
func (g *Grid) IsOrdinary(c cell.Cell) bool {
	return g.cells[c] == Ordinary
}

// IsPaired reports whether c is a Paired obstacle.
func (g *Grid) IsPaired(c cell.Cell) bool {
	return g.cells[c] == Paired
}

// Occupied returns every obstacle cell, sorted.
func (g *Grid) Occupied() []cell.Cell {
	out := make([]cell.Cell, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	cell.Sort(out)
	return out
}

// Ordinary returns the Ordinary obstacle cells, sorted.
func (g *Grid) Ordinary() []cell.Cell {
	out := make([]cell.Cell, 0, len(g.cells))
	for c, cat := range g.cells {
		if cat == Ordinary {
			out = append(out, c)
		}
	}
	cell.Sort(out)
	return out
}

// Start returns the start cell; ok is false if none is set.
func (g *Grid) Start() (c cell.Cell, ok bool) {
	if g.start == nil {
		return cell.Cell{}, false
	}
	return *g.start, true
}

// End returns the end cell; ok is false if none is set.
func (g *Grid) End() (c cell.Cell, ok bool) {
	if g.end == nil {
		return cell.Cell{}, false
	}
	return *g.end, true
}

// IsStart reports whether c is the designated start cell.
func (g *Grid) IsStart(c cell.Cell) bool {
	return g.start != nil && *g.start == c
}

// SetStart designates c as the start cell. The cell must be in bounds and free;
// otherwise the grid is left unchanged.
func (g *Grid) SetStart(c cell.Cell) error {
	if err := g.checkEndpoint(c); err != nil {
		return err
	}
	g.start = &c
	g.log.WithFields(logrus.Fields{"cell": c}).Debug("grid: start set")
	return nil
}

// SetEnd designates c as the end cell under the same rules as SetStart.
func (g *Grid) SetEnd(c cell.Cell) error {
	if err := g.checkEndpoint(c); err != nil {
		return err
	}
	g.end = &c
	g.log.WithFields(logrus.Fields{"cell": c}).Debug("grid: end set")
	return nil
}

func (g *Grid) checkEndpoint(c cell.Cell) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if g.IsOccupied(c) {
		return fmt.Errorf("%w: %v", ErrOccupied, c)
	}
	return nil
}

// Reset clears obstacles, pair links, endpoints and paths. Size and options stay.
func (g *Grid) Reset() {
	g.cells = make(map[cell.Cell]Category)
	g.links = make(links)
	g.start, g.end = nil, nil
	g.paths = nil
	g.log.Debug("grid: reset")
}
