package edgelist

import (
	"errors"

	"github.com/katalvlaran/pathsketch/cell"
)

// ErrInvalidInput indicates a malformed section header.
var ErrInvalidInput = errors.New("edgelist: invalid input")

// Literal tokens of the solver output.
const (
	HeaderPrefix = "--- Path "
	HeaderSuffix = " ---"
	Arrow        = "->"
)

// Edge is a directed step: the walk visits To immediately after From.
type Edge struct {
	From, To cell.Cell
}

// Section is one labeled group of edges, in the order they were encountered.
type Section struct {
	// Label is the N of the "--- Path N ---" header.
	Label int
	// Edges may be empty.
	Edges []Edge
}
