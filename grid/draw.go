package grid

import (
	"fmt"

	"github.com/katalvlaran/pathsketch/cell"
	"github.com/katalvlaran/pathsketch/raster"
)

// Mode selects what a Stroke does with the cells it touches.
type Mode int

const (
	// Draw tags touched cells Ordinary.
	Draw Mode = iota
	// Erase frees touched cells, Paired cells excepted.
	Erase
)

// touched rasterizes from -> to, leaving out the designated start cell.
func (g *Grid) touched(from, to cell.Cell) (cell.Set, error) {
	if !g.Contains(from) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}
	if !g.Contains(to) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, to)
	}
	return raster.Line(from, to, g.IsStart), nil
}

// AddLine tags every cell on the segment from -> to as Ordinary and returns
// how many cells changed. Paired cells keep their category.
func (g *Grid) AddLine(from, to cell.Cell) (int, error) {
	set, err := g.touched(from, to)
	if err != nil {
		return 0, err
	}
	n := 0
	for c := range set {
		if _, ok := g.cells[c]; ok {
			continue
		}
		g.cells[c] = Ordinary
		n++
	}
	return n, nil
}

// RemoveLine frees every Ordinary cell on the segment from -> to and returns
// how many cells changed. Paired cells are only removed through RemovePair.
func (g *Grid) RemoveLine(from, to cell.Cell) (int, error) {
	set, err := g.touched(from, to)
	if err != nil {
		return 0, err
	}
	n := 0
	for c := range set {
		if g.cells[c] == Ordinary {
			delete(g.cells, c)
			n++
		}
	}
	return n, nil
}

// Stroke is one freehand gesture. It remembers the previous resolved sample
// so that each new sample is joined to it by a rasterized segment.
type Stroke struct {
	g    *Grid
	mode Mode
	prev cell.Cell
	has  bool
}

// NewStroke starts a gesture in the given mode with no previous sample.
func (g *Grid) NewStroke(mode Mode) *Stroke {
	return &Stroke{g: g, mode: mode}
}

// Sample feeds the current pointer cell. ok is false when the pointer did
// not resolve to a cell; such a sample breaks the line. The previous sample
// is replaced after every call, whether or not a segment was applied.
// Returns the number of cells changed.
func (s *Stroke) Sample(c cell.Cell, ok bool) (int, error) {
	ok = ok && s.g.Contains(c)
	prev, had := s.prev, s.has
	s.prev, s.has = c, ok
	if !had || !ok {
		return 0, nil
	}
	if s.mode == Erase {
		return s.g.RemoveLine(prev, c)
	}
	return s.g.AddLine(prev, c)
}

// Release ends the gesture; the next sample starts a new line.
func (s *Stroke) Release() {
	s.has = false
}
