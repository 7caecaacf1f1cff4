// File: stitch/stitch_test.go
package stitch_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/pathsketch/cell"
	"github.com/katalvlaran/pathsketch/edgelist"
	"github.com/katalvlaran/pathsketch/stitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(x, y int) *cell.Cell {
	c := cell.New(x, y)
	return &c
}

func edge(x1, y1, x2, y2 int) edgelist.Edge {
	return edgelist.Edge{From: cell.New(x1, y1), To: cell.New(x2, y2)}
}

// TestStitch_Scenario reconstructs the three-cell walk from a noisy response.
func TestStitch_Scenario(t *testing.T) {
	sections, err := edgelist.Parse("noise\n--- Path 1 ---\n(2,2) -> (3,2)\n(3,2) -> (3,3)\nnoise")
	require.NoError(t, err)
	require.Len(t, sections, 1)

	p, err := stitch.Stitch(at(2, 2), at(3, 3), sections[0].Edges, 0, sections[0].Label)
	require.NoError(t, err)
	assert.Equal(t, []cell.Cell{cell.New(2, 2), cell.New(3, 2), cell.New(3, 3)}, p.Cells)
	assert.Equal(t, 1, p.Label)
	assert.Equal(t, 0, p.ID)
}

// TestStitch_UnorderedEdges checks that edge order in the input does not matter.
func TestStitch_UnorderedEdges(t *testing.T) {
	edges := []edgelist.Edge{edge(3, 1, 3, 2), edge(1, 1, 2, 1), edge(2, 1, 3, 1)}
	p, err := stitch.Stitch(at(1, 1), at(3, 2), edges, 2, 9)
	require.NoError(t, err)
	assert.Equal(t, []cell.Cell{cell.New(1, 1), cell.New(2, 1), cell.New(3, 1), cell.New(3, 2)}, p.Cells)
	assert.Equal(t, 4, p.Len())
}

// TestStitch_LaterDuplicateWins verifies that a repeated From key overrides earlier edges.
func TestStitch_LaterDuplicateWins(t *testing.T) {
	edges := []edgelist.Edge{edge(1, 1, 9, 9), edge(1, 1, 1, 2)}
	p, err := stitch.Stitch(at(1, 1), at(1, 2), edges, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []cell.Cell{cell.New(1, 1), cell.New(1, 2)}, p.Cells)
}

// TestStitch_StartEqualsEnd yields the single endpoint cell.
func TestStitch_StartEqualsEnd(t *testing.T) {
	p, err := stitch.Stitch(at(4, 4), at(4, 4), []edgelist.Edge{edge(4, 4, 4, 5)}, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []cell.Cell{cell.New(4, 4)}, p.Cells)
}

// TestStitch_Errors covers every failure kind.
func TestStitch_Errors(t *testing.T) {
	valid := []edgelist.Edge{edge(2, 2, 3, 2), edge(3, 2, 3, 3)}
	cases := []struct {
		name       string
		start, end *cell.Cell
		edges      []edgelist.Edge
		want       error
	}{
		{"StartNotSet", nil, at(3, 3), valid, stitch.ErrStartNotSet},
		{"EndNotSet", at(2, 2), nil, valid, stitch.ErrEndNotSet},
		{"BothUnset", nil, nil, valid, stitch.ErrStartNotSet},
		{"Disconnected", at(2, 2), at(4, 4), valid, stitch.ErrInvalidPath},
		{"NoEdges", at(2, 2), at(3, 3), nil, stitch.ErrInvalidPath},
		{"StartNotInEdges", at(1, 1), at(3, 3), valid, stitch.ErrInvalidPath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := stitch.Stitch(tc.start, tc.end, tc.edges, 0, 1)
			assert.True(t, errors.Is(err, tc.want), "got %v; want %v", err, tc.want)
		})
	}
}

// TestStitch_CycleTerminates makes sure a loop that never reaches end fails fast
// with ErrCycle, which also matches ErrInvalidPath.
func TestStitch_CycleTerminates(t *testing.T) {
	edges := []edgelist.Edge{edge(2, 2, 3, 2), edge(3, 2, 2, 2)}

	done := make(chan error, 1)
	go func() {
		_, err := stitch.Stitch(at(2, 2), at(5, 5), edges, 0, 1)
		done <- err
	}()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, stitch.ErrCycle), "got %v", err)
		assert.True(t, errors.Is(err, stitch.ErrInvalidPath), "got %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("Stitch did not terminate on a cyclic edge set")
	}
}

// TestStitch_CycleNotThroughStart detects a loop entered after a lead-in.
func TestStitch_CycleNotThroughStart(t *testing.T) {
	edges := []edgelist.Edge{edge(1, 1, 2, 1), edge(2, 1, 3, 1), edge(3, 1, 3, 2), edge(3, 2, 2, 1)}
	_, err := stitch.Stitch(at(1, 1), at(9, 9), edges, 0, 1)
	assert.ErrorIs(t, err, stitch.ErrCycle)
}

// TestAll_TwoSections keeps section order and assigns IDs 0 and 1.
func TestAll_TwoSections(t *testing.T) {
	text := edgelist.Format([]edgelist.Section{
		{Label: 1, Edges: []edgelist.Edge{edge(1, 1, 2, 1), edge(2, 1, 3, 1)}},
		{Label: 2, Edges: []edgelist.Edge{edge(1, 1, 2, 2), edge(2, 2, 3, 1)}},
	})
	sections, err := edgelist.Parse(text)
	require.NoError(t, err)

	paths, err := stitch.All(at(1, 1), at(3, 1), sections)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, 0, paths[0].ID)
	assert.Equal(t, 1, paths[1].ID)
	assert.Equal(t, 1, paths[0].Label)
	assert.Equal(t, 2, paths[1].Label)
	assert.Equal(t, cell.New(2, 2), paths[1].Cells[1])
}

// TestAll_OneBadSectionFailsAll returns no partial result.
func TestAll_OneBadSectionFailsAll(t *testing.T) {
	sections := []edgelist.Section{
		{Label: 1, Edges: []edgelist.Edge{edge(1, 1, 2, 1)}},
		{Label: 2, Edges: []edgelist.Edge{edge(1, 1, 1, 2)}},
	}
	paths, err := stitch.All(at(1, 1), at(2, 1), sections)
	assert.Nil(t, paths)
	assert.ErrorIs(t, err, stitch.ErrInvalidPath)
	assert.ErrorContains(t, err, "path 2")
}

// TestAll_Preconditions reports missing endpoints even without sections.
func TestAll_Preconditions(t *testing.T) {
	_, err := stitch.All(nil, at(1, 1), nil)
	assert.ErrorIs(t, err, stitch.ErrStartNotSet)
	_, err = stitch.All(at(1, 1), nil, nil)
	assert.ErrorIs(t, err, stitch.ErrEndNotSet)

	paths, err := stitch.All(at(1, 1), at(2, 2), nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

// TestPath_ColorIndex wraps around the palette.
func TestPath_ColorIndex(t *testing.T) {
	assert.Equal(t, 3, stitch.Path{ID: 3}.ColorIndex())
	assert.Equal(t, 0, stitch.Path{ID: stitch.PaletteSize}.ColorIndex())
	assert.Equal(t, 1, stitch.Path{ID: 2*stitch.PaletteSize + 1}.ColorIndex())
}
