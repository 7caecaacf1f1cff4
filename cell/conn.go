package cell

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	// This is the adjacency produced by the rasterizer.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets for conn, clockwise from north.
// The returned slice is shared and must not be modified.
func (conn Connectivity) Offsets() [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// String returns "conn4" or "conn8".
func (conn Connectivity) String() string {
	if conn == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// MarshalText implements encoding.TextMarshaler.
func (conn Connectivity) MarshalText() ([]byte, error) {
	return []byte(conn.String()), nil
}

// UnmarshalText accepts "conn4"/"4" and "conn8"/"8".
func (conn *Connectivity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "conn4", "4":
		*conn = Conn4
	case "conn8", "8":
		*conn = Conn8
	default:
		return fmt.Errorf("cell: unknown connectivity %q", text)
	}
	return nil
}

// Adjacent reports whether a and b are distinct neighbors under conn.
// Complexity: O(1).
func Adjacent(a, b Cell, conn Connectivity) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if conn == Conn8 {
		return dx <= 1 && dy <= 1 && dx+dy > 0
	}
	return dx+dy == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
