// File: edgelist/parse_test.go
package edgelist_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/pathsketch/cell"
	"github.com/katalvlaran/pathsketch/edgelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edge(x1, y1, x2, y2 int) edgelist.Edge {
	return edgelist.Edge{From: cell.New(x1, y1), To: cell.New(x2, y2)}
}

// TestParse_Sections covers the accepted shapes of solver output.
func TestParse_Sections(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []edgelist.Section
	}{
		{"Empty", "", nil},
		{"NoHeader", "Solver finished.\nobjective = 3\n", nil},
		{
			"NoiseAround",
			"noise\n--- Path 1 ---\n(2,2) -> (3,2)\n(3,2) -> (3,3)\nnoise",
			[]edgelist.Section{{Label: 1, Edges: []edgelist.Edge{edge(2, 2, 3, 2), edge(3, 2, 3, 3)}}},
		},
		{
			"ZeroEdges",
			"--- Path 4 ---\nnothing to report\n",
			[]edgelist.Section{{Label: 4}},
		},
		{
			"HeaderAtEOF",
			"log line\n--- Path 2 ---",
			[]edgelist.Section{{Label: 2}},
		},
		{
			"Indentation",
			"--- Path 1 ---\n   (7,5) -> (8,5)\n\t(8,5)->(9,5)  \n",
			[]edgelist.Section{{Label: 1, Edges: []edgelist.Edge{edge(7, 5, 8, 5), edge(8, 5, 9, 5)}}},
		},
		{
			"CRLF",
			"--- Path 1 ---\r\n(1,1) -> (1,2)\r\n(1,2) -> (2,2)\r\n",
			[]edgelist.Section{{Label: 1, Edges: []edgelist.Edge{edge(1, 1, 1, 2), edge(1, 2, 2, 2)}}},
		},
		{
			"BlankAfterComma",
			"--- Path 1 ---\n(10, 11) -> (12, 13)\n",
			[]edgelist.Section{{Label: 1, Edges: []edgelist.Edge{edge(10, 11, 12, 13)}}},
		},
		{
			"MalformedLineEndsSection",
			"--- Path 1 ---\n(1,1) -> (1,2)\n(1,2) => (1,3)\n(1,3) -> (1,4)\n",
			[]edgelist.Section{{Label: 1, Edges: []edgelist.Edge{edge(1, 1, 1, 2)}}},
		},
		{
			"BlankLineEndsSection",
			"--- Path 1 ---\n(1,1) -> (1,2)\n\n(1,2) -> (1,3)\n",
			[]edgelist.Section{{Label: 1, Edges: []edgelist.Edge{edge(1, 1, 1, 2)}}},
		},
		{
			"TwoSections",
			"\n\n--- Path 1 ---\n(1,1) -> (2,1)\n--- Path 2 ---\n(5,5) -> (5,6)\n(5,6) -> (5,7)\n\n",
			[]edgelist.Section{
				{Label: 1, Edges: []edgelist.Edge{edge(1, 1, 2, 1)}},
				{Label: 2, Edges: []edgelist.Edge{edge(5, 5, 5, 6), edge(5, 6, 5, 7)}},
			},
		},
		{
			"HeaderMidLine",
			"CBC says: --- Path 3 ---\n(1,1) -> (1,2)\n",
			[]edgelist.Section{{Label: 3, Edges: []edgelist.Edge{edge(1, 1, 1, 2)}}},
		},
		{
			"TrailingJunkOnEdgeLine",
			"--- Path 1 ---\n(1,1) -> (1,2) extra\n",
			[]edgelist.Section{{Label: 1}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := edgelist.Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParse_InvalidHeader verifies that unreadable headers fail the whole scan.
func TestParse_InvalidHeader(t *testing.T) {
	inputs := map[string]string{
		"NonNumeric": "--- Path x ---\n(1,1) -> (1,2)\n",
		"Unclosed":   "--- Path 1\n(1,1) -> (1,2)\n",
		"Trailing":   "--- Path 1 --- done\n",
		"Overflow":   "--- Path 99999999999999999999999 ---\n",
		"SecondBad":  "--- Path 1 ---\n(1,1) -> (1,2)\n--- Path ? ---\n",
	}
	for name, text := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := edgelist.Parse(text)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, edgelist.ErrInvalidInput), "got %v", err)
		})
	}
}

// TestParse_OverflowingCoordinate treats an unreadable number as a malformed line.
func TestParse_OverflowingCoordinate(t *testing.T) {
	got, err := edgelist.Parse("--- Path 1 ---\n(1,1) -> (1,2)\n(1,99999999999999999999999) -> (1,3)\n")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Edges, 1)
}

// TestParseReader reads sections from a stream and surfaces read failures.
func TestParseReader(t *testing.T) {
	got, err := edgelist.ParseReader(strings.NewReader("--- Path 1 ---\n(1,1) -> (1,2)\n"))
	require.NoError(t, err)
	assert.Equal(t, []edgelist.Section{{Label: 1, Edges: []edgelist.Edge{edge(1, 1, 1, 2)}}}, got)

	_, err = edgelist.ParseReader(iotest.ErrReader(errors.New("boom")))
	assert.ErrorContains(t, err, "boom")
}
