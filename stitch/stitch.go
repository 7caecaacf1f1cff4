package stitch

import (
	"fmt"

	"github.com/katalvlaran/pathsketch/cell"
	"github.com/katalvlaran/pathsketch/edgelist"
)

// Stitch walks edges from start to end and returns the visited cells.
// start and end are read as given; nil means "not set".
//
// If start == end the path is that single cell, whatever the edges say.
func Stitch(start, end *cell.Cell, edges []edgelist.Edge, id, label int) (Path, error) {
	if start == nil {
		return Path{}, ErrStartNotSet
	}
	if end == nil {
		return Path{}, ErrEndNotSet
	}

	next := make(map[cell.Cell]cell.Cell, len(edges))
	for _, e := range edges {
		next[e.From] = e.To
	}

	cur, target := *start, *end
	seen := cell.NewSet(cur)
	cells := []cell.Cell{cur}
	for cur != target {
		to, ok := next[cur]
		if !ok {
			return Path{}, fmt.Errorf("%w: no edge leaves %v", ErrInvalidPath, cur)
		}
		if seen.Has(to) {
			return Path{}, fmt.Errorf("%w: %v revisited after %d steps", ErrCycle, to, len(cells))
		}
		seen.Add(to)
		cells = append(cells, to)
		cur = to
	}

	return Path{ID: id, Label: label, Cells: cells}, nil
}

// All stitches every section in order. The first failure aborts the whole
// reconstruction and no paths are returned.
// Missing endpoints are reported even when there are no sections.
func All(start, end *cell.Cell, sections []edgelist.Section) ([]Path, error) {
	if start == nil {
		return nil, ErrStartNotSet
	}
	if end == nil {
		return nil, ErrEndNotSet
	}
	paths := make([]Path, 0, len(sections))
	for i, sec := range sections {
		p, err := Stitch(start, end, sec.Edges, i, sec.Label)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", sec.Label, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
