// Package stitch reconstructs ordered start-to-end walks from unordered
// sets of directed edges, one walk per solver section.
//
// What:
//
//   - Stitch builds a successor map from a section's edges (a later edge
//     with the same From replaces an earlier one) and follows it from the
//     start cell until the end cell is reached.
//   - All applies Stitch to every section in order and fails as a whole on
//     the first failing section.
//
// The walk is bounded: every step must reach a cell that has not been
// visited yet, so it ends after at most len(successors)+1 cells. A walk
// that comes back to a visited cell is reported as ErrCycle, which wraps
// ErrInvalidPath.
//
// Errors:
//
//   - ErrStartNotSet: no start cell.
//   - ErrEndNotSet:   no end cell.
//   - ErrInvalidPath: the edges do not lead from start to end.
//   - ErrCycle:       the edges loop without reaching end (also ErrInvalidPath).
//
// Complexity:
//
//   - Stitch: O(E) time and memory.
package stitch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathsketch/cell"
)

// Sentinel errors for stitching.
var (
	// ErrStartNotSet indicates the grid has no start cell.
	ErrStartNotSet = errors.New("stitch: start not set")

	// ErrEndNotSet indicates the grid has no end cell.
	ErrEndNotSet = errors.New("stitch: end not set")

	// ErrInvalidPath indicates the edge set does not connect start to end.
	ErrInvalidPath = errors.New("stitch: invalid path")

	// ErrCycle indicates the walk returned to a visited cell before reaching end.
	ErrCycle = fmt.Errorf("%w: cycle", ErrInvalidPath)
)

// PaletteSize is the number of distinct path colors a display cycles through.
const PaletteSize = 14

// Path is one reconstructed walk.
type Path struct {
	// ID is the position of the source section in the solver output, from 0.
	ID int
	// Label is the index written in the section header.
	Label int
	// Cells runs from start to end inclusive.
	Cells []cell.Cell
}

// ColorIndex returns a stable palette slot for the path.
func (p Path) ColorIndex() int {
	return p.ID % PaletteSize
}

// Len returns the number of cells in the path.
func (p Path) Len() int {
	return len(p.Cells)
}
