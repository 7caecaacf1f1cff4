package grid

import (
	"fmt"

	"github.com/katalvlaran/pathsketch/cell"
	"github.com/katalvlaran/pathsketch/edgelist"
	"github.com/katalvlaran/pathsketch/stitch"
	"github.com/sirupsen/logrus"
)

// ApplySolution reconstructs one path per section of the solver output and
// replaces Paths with them. Endpoints are read at call time.
//
// On any failure (unreadable text, missing endpoint, a section that does
// not lead from start to end, a walk that leaves the grid or jumps between
// non-adjacent cells) Paths is left as it was.
func (g *Grid) ApplySolution(text string) error {
	sections, err := edgelist.Parse(text)
	if err != nil {
		g.log.WithError(err).Debug("grid: solver output rejected")
		return err
	}
	return g.ApplySections(sections)
}

// ApplySections is ApplySolution for already parsed sections.
// Sections are normalized with the grid's Normalizer first.
func (g *Grid) ApplySections(sections []edgelist.Section) error {
	paths, err := stitch.All(g.start, g.end, edgelist.Normalize(sections, g.normalize))
	if err == nil {
		err = g.checkPaths(paths)
	}
	if err != nil {
		g.log.WithError(err).Debug("grid: solver output rejected")
		return err
	}
	g.paths = paths
	g.log.WithFields(logrus.Fields{"paths": len(paths)}).Debug("grid: paths replaced")
	return nil
}

// checkPaths verifies every cell is in bounds and every step is adjacent
// under the grid connectivity.
func (g *Grid) checkPaths(paths []stitch.Path) error {
	for _, p := range paths {
		for i, c := range p.Cells {
			if !g.Contains(c) {
				return fmt.Errorf("path %d: %w: %v is outside the grid", p.Label, ErrInvalidPath, c)
			}
			if i > 0 && !cell.Adjacent(p.Cells[i-1], c, g.conn) {
				return fmt.Errorf("path %d: %w: %v -> %v is not a %s step", p.Label, ErrInvalidPath, p.Cells[i-1], c, g.conn)
			}
		}
	}
	return nil
}

// Paths returns the most recently reconstructed paths. The slice is a copy;
// the cells inside are shared and must not be modified.
func (g *Grid) Paths() []stitch.Path {
	out := make([]stitch.Path, len(g.paths))
	copy(out, g.paths)
	return out
}

// ClearPaths discards the reconstructed paths.
func (g *Grid) ClearPaths() {
	g.paths = nil
}
