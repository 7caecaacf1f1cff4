package grid

import (
	"github.com/katalvlaran/pathsketch/cell"
	"github.com/sirupsen/logrus"
)

// diagonal describes one L-shape: c sits on a corner of a 2×2 block, the
// two orthogonal neighbors must be Ordinary and the opposite corner free.
type diagonal struct {
	h, v, opp [2]int
}

// The four corners c may occupy, tested in this order:
// top-left, bottom-right, top-right, bottom-left.
var diagonals = [4]diagonal{
	{h: [2]int{1, 0}, v: [2]int{0, 1}, opp: [2]int{1, 1}},
	{h: [2]int{-1, 0}, v: [2]int{0, -1}, opp: [2]int{-1, -1}},
	{h: [2]int{-1, 0}, v: [2]int{0, 1}, opp: [2]int{-1, 1}},
	{h: [2]int{1, 0}, v: [2]int{0, -1}, opp: [2]int{1, -1}},
}

// DiagonalMatch reports the free diagonal partner for c, if c can be paired.
// c must be in bounds and free. The first matching pattern wins.
func (g *Grid) DiagonalMatch(c cell.Cell) (opposite cell.Cell, ok bool) {
	if !g.Contains(c) || g.IsOccupied(c) {
		return cell.Cell{}, false
	}
	for _, d := range diagonals {
		h := c.Add(d.h[0], d.h[1])
		v := c.Add(d.v[0], d.v[1])
		o := c.Add(d.opp[0], d.opp[1])
		if g.Contains(h) && g.IsOrdinary(h) &&
			g.Contains(v) && g.IsOrdinary(v) &&
			g.Contains(o) && !g.IsOccupied(o) {
			return o, true
		}
	}
	return cell.Cell{}, false
}

// AddPair pairs c with its diagonal match: both cells become Paired and are
// linked to each other. Returns the partner, or ok=false if c has no match.
func (g *Grid) AddPair(c cell.Cell) (partner cell.Cell, ok bool) {
	o, ok := g.DiagonalMatch(c)
	if !ok {
		return cell.Cell{}, false
	}
	g.cells[c] = Paired
	g.cells[o] = Paired
	g.links.link(c, o)
	g.log.WithFields(logrus.Fields{"a": c, "b": o}).Debug("grid: pair added")
	return o, true
}

// RemovePair frees a Paired cell and its partner and drops the link in both
// directions. A cell that is not Paired, or has no recorded partner, is left
// alone and ok is false.
func (g *Grid) RemovePair(c cell.Cell) (partner cell.Cell, ok bool) {
	if !g.IsPaired(c) {
		return cell.Cell{}, false
	}
	o, ok := g.links.unlink(c)
	if !ok {
		return cell.Cell{}, false
	}
	delete(g.cells, c)
	delete(g.cells, o)
	g.log.WithFields(logrus.Fields{"a": c, "b": o}).Debug("grid: pair removed")
	return o, true
}

// Partner returns the cell linked to c.
func (g *Grid) Partner(c cell.Cell) (cell.Cell, bool) {
	return g.links.partner(c)
}

// Pairs returns every linked pair once, canonicalized (A <= B) and sorted.
func (g *Grid) Pairs() []cell.Pair {
	return g.links.pairs()
}
