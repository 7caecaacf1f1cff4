package cell

// Set is an unordered collection of distinct cells.
type Set map[Cell]struct{}

// NewSet returns a set holding the given cells.
func NewSet(cells ...Cell) Set {
	s := make(Set, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c; inserting an existing cell is a no-op.
func (s Set) Add(c Cell) {
	s[c] = struct{}{}
}

// Has reports whether c is a member.
func (s Set) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members ordered by Compare.
// Complexity: O(n log n).
func (s Set) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	Sort(out)
	return out
}
