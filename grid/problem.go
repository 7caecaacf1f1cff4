package grid

import "github.com/katalvlaran/pathsketch/cell"

// Problem is the snapshot a problem-description generator consumes.
// Coordinates use the grid's 1-based numbering.
type Problem struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Start     cell.Cell   `json:"start"`
	End       cell.Cell   `json:"end"`
	Obstacles []cell.Cell `json:"obstacles"`
	Pairs     []cell.Pair `json:"pairs"`
}

// Problem captures the current sketch. Obstacles holds the Ordinary cells
// only; Paired cells appear once each in Pairs.
// Returns ErrStartNotSet or ErrEndNotSet if an endpoint is missing.
func (g *Grid) Problem() (Problem, error) {
	if g.start == nil {
		return Problem{}, ErrStartNotSet
	}
	if g.end == nil {
		return Problem{}, ErrEndNotSet
	}
	return Problem{
		Width:     g.width,
		Height:    g.height,
		Start:     *g.start,
		End:       *g.end,
		Obstacles: g.Ordinary(),
		Pairs:     g.Pairs(),
	}, nil
}
