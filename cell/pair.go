package cell

import "sort"

// Pair is an unordered pair of cells stored in canonical order (A <= B).
type Pair struct {
	A Cell `json:"a"`
	B Cell `json:"b"`
}

// NewPair canonicalizes (a, b) so that the smaller cell comes first.
// NewPair(a, b) == NewPair(b, a) for all a, b.
func NewPair(a, b Cell) Pair {
	if b.Less(a) {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// SortPairs orders pairs by A, then by B.
func SortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if c := Compare(pairs[i].A, pairs[j].A); c != 0 {
			return c < 0
		}
		return pairs[i].B.Less(pairs[j].B)
	})
}
