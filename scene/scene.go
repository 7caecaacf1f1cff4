// Package scene loads a sketch described in TOML and replays it onto a grid.
//
// A scene file carries the grid size, the endpoints, the freehand strokes
// (drawn and erased), the cells clicked to complete diagonal pairs and a
// [settings] table:
//
//	width  = 6
//	height = 4
//	start  = { x = 1, y = 1 }
//	end    = { x = 6, y = 4 }
//	pairs  = [ { x = 3, y = 3 } ]
//
//	[settings]
//	log_level        = "debug"
//	normalize_offset = 0
//	connectivity     = "conn8"
//
//	[[strokes]]
//	points = [ { x = 4, y = 1 }, { x = 4, y = 3 } ]
//
// Replay order is fixed: start, draw strokes, erase strokes, pairs, end.
// The start is placed first so that strokes pass around it; the end is
// placed last so that it is checked against the finished sketch.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/pathsketch/cell"
	"github.com/katalvlaran/pathsketch/edgelist"
	"github.com/katalvlaran/pathsketch/grid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidScene indicates a scene that cannot be decoded or replayed.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Settings tune how a scene is replayed and reported.
type Settings struct {
	// LogLevel is a logrus level name ("info", "debug", ...).
	LogLevel string `toml:"log_level"`
	// NormalizeOffset is subtracted from solver coordinates; 0 for 1-based grids.
	NormalizeOffset int `toml:"normalize_offset"`
	// Connectivity is used to validate reconstructed paths.
	Connectivity cell.Connectivity `toml:"connectivity"`
}

// Stroke is one freehand gesture given by its successive pointer cells.
type Stroke struct {
	Points []cell.Cell `toml:"points"`
}

// Scene is a decoded scene file.
type Scene struct {
	Settings Settings    `toml:"settings"`
	Width    int         `toml:"width"`
	Height   int         `toml:"height"`
	Start    *cell.Cell  `toml:"start"`
	End      *cell.Cell  `toml:"end"`
	Strokes  []Stroke    `toml:"strokes"`
	Erase    []Stroke    `toml:"erase"`
	Pairs    []cell.Cell `toml:"pairs"`
}

// DefaultSettings are applied before decoding; keys present in the file
// override them.
func DefaultSettings() Settings {
	return Settings{LogLevel: "info", Connectivity: cell.Conn8}
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a scene from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Scene, error) {
	s := &Scene{Settings: DefaultSettings()}
	md, err := toml.NewDecoder(r).Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScene, strings.Join(names, ", "))
	}
	if _, err := s.Settings.Level(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return s, nil
}

// Level parses LogLevel.
func (st Settings) Level() (logrus.Level, error) {
	return logrus.ParseLevel(st.LogLevel)
}

// Options returns the grid options implied by the settings.
func (st Settings) Options() []grid.Option {
	return []grid.Option{
		grid.WithConnectivity(st.Connectivity),
		grid.WithNormalizer(edgelist.Offset(st.NormalizeOffset)),
	}
}

// Build replays the scene onto a new grid. Extra options are applied after
// the ones derived from Settings, so a caller-supplied logger wins.
func (s *Scene) Build(opts ...grid.Option) (*grid.Grid, error) {
	g, err := grid.New(s.Width, s.Height, append(s.Settings.Options(), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if s.Start != nil {
		if err := g.SetStart(*s.Start); err != nil {
			return nil, fmt.Errorf("%w: start: %w", ErrInvalidScene, err)
		}
	}
	for i, st := range s.Strokes {
		if err := replay(g, grid.Draw, st); err != nil {
			return nil, fmt.Errorf("%w: stroke %d: %w", ErrInvalidScene, i, err)
		}
	}
	for i, st := range s.Erase {
		if err := replay(g, grid.Erase, st); err != nil {
			return nil, fmt.Errorf("%w: erase %d: %w", ErrInvalidScene, i, err)
		}
	}
	for _, c := range s.Pairs {
		if _, ok := g.AddPair(c); !ok {
			return nil, fmt.Errorf("%w: %v does not complete a diagonal pair", ErrInvalidScene, c)
		}
	}
	if s.End != nil {
		if err := g.SetEnd(*s.End); err != nil {
			return nil, fmt.Errorf("%w: end: %w", ErrInvalidScene, err)
		}
	}
	return g, nil
}

// replay feeds a stroke's points through a grid.Stroke. A single point
// marks that one cell, as a click without drag does.
func replay(g *grid.Grid, mode grid.Mode, st Stroke) error {
	for _, c := range st.Points {
		if !g.Contains(c) {
			return fmt.Errorf("%w: %v", grid.ErrOutOfBounds, c)
		}
	}
	if len(st.Points) == 1 {
		c := st.Points[0]
		var err error
		if mode == grid.Erase {
			_, err = g.RemoveLine(c, c)
		} else {
			_, err = g.AddLine(c, c)
		}
		return err
	}
	s := g.NewStroke(mode)
	defer s.Release()
	for _, c := range st.Points {
		if _, err := s.Sample(c, true); err != nil {
			return err
		}
	}
	return nil
}
