package grid

import (
	"errors"
	"io"

	"github.com/katalvlaran/pathsketch/cell"
	"github.com/katalvlaran/pathsketch/edgelist"
	"github.com/katalvlaran/pathsketch/stitch"
	"github.com/sirupsen/logrus"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a non-positive width or height.
	ErrInvalidSize = errors.New("grid: width and height must be positive")

	// ErrOutOfBounds indicates a cell outside 1..Width × 1..Height.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")

	// ErrOccupied indicates an endpoint was requested on an obstacle cell.
	ErrOccupied = errors.New("grid: cell is occupied")

	// ErrStartNotSet, ErrEndNotSet and ErrInvalidPath are the stitcher's errors.
	ErrStartNotSet = stitch.ErrStartNotSet
	ErrEndNotSet   = stitch.ErrEndNotSet
	ErrInvalidPath = stitch.ErrInvalidPath
)

// Category tags an occupied cell.
type Category int

const (
	// Ordinary is a plain obstacle.
	Ordinary Category = iota + 1
	// Paired is an obstacle linked to exactly one diagonal partner.
	Paired
)

// String returns "ordinary" or "paired".
func (c Category) String() string {
	switch c {
	case Ordinary:
		return "ordinary"
	case Paired:
		return "paired"
	}
	return "unknown"
}

// Option configures a Grid before first use.
type Option func(g *Grid)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("grid: WithLogger(nil)")
	}
	return func(g *Grid) { g.log = l }
}

// WithConnectivity sets the adjacency used to check reconstructed paths and
// to answer Reachable.
func WithConnectivity(conn cell.Connectivity) Option {
	return func(g *Grid) { g.conn = conn }
}

// WithNormalizer sets how solver coordinates map onto grid cells. Panics on nil.
func WithNormalizer(n edgelist.Normalizer) Option {
	if n == nil {
		panic("grid: WithNormalizer(nil)")
	}
	return func(g *Grid) { g.normalize = n }
}

// Grid is the sketch aggregate. Use New to construct one.
type Grid struct {
	width, height int

	cells map[cell.Cell]Category
	links links

	start, end *cell.Cell
	paths      []stitch.Path

	conn      cell.Connectivity
	normalize edgelist.Normalizer
	log       logrus.FieldLogger
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
