package edgelist

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathsketch/cell"
)

// Format renders sections in the solver's literal syntax, one header line
// per section followed by one edge line per edge.
func Format(sections []Section) string {
	var b strings.Builder
	for _, sec := range sections {
		fmt.Fprintf(&b, "%s%d%s\n", HeaderPrefix, sec.Label, HeaderSuffix)
		for _, e := range sec.Edges {
			fmt.Fprintf(&b, "%s %s %s\n", e.From, Arrow, e.To)
		}
	}
	return b.String()
}

// Normalizer maps a solver-native coordinate to the grid's convention.
type Normalizer func(cell.Cell) cell.Cell

// Identity leaves coordinates unchanged. It is the policy for grids that
// use the solver's 1-based numbering.
func Identity(c cell.Cell) cell.Cell { return c }

// Offset subtracts d from both coordinates; Offset(1) turns 1-based solver
// output into 0-based cells.
func Offset(d int) Normalizer {
	if d == 0 {
		return Identity
	}
	return func(c cell.Cell) cell.Cell { return c.Add(-d, -d) }
}

// Normalize returns a copy of sections with every endpoint passed through n.
// A nil n is treated as Identity.
func Normalize(sections []Section, n Normalizer) []Section {
	if n == nil {
		n = Identity
	}
	out := make([]Section, len(sections))
	for i, sec := range sections {
		edges := make([]Edge, len(sec.Edges))
		for j, e := range sec.Edges {
			edges[j] = Edge{From: n(e.From), To: n(e.To)}
		}
		out[i] = Section{Label: sec.Label, Edges: edges}
	}
	return out
}
