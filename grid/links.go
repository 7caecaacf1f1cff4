package grid

import "github.com/katalvlaran/pathsketch/cell"

// links is a symmetric partner map: link and unlink always write both
// directions, so a ↦ b exists exactly when b ↦ a does.
type links map[cell.Cell]cell.Cell

func (l links) link(a, b cell.Cell) {
	l[a] = b
	l[b] = a
}

// unlink removes a and its partner and returns the partner.
func (l links) unlink(a cell.Cell) (cell.Cell, bool) {
	b, ok := l[a]
	if !ok {
		return cell.Cell{}, false
	}
	delete(l, a)
	delete(l, b)
	return b, true
}

func (l links) partner(a cell.Cell) (cell.Cell, bool) {
	b, ok := l[a]
	return b, ok
}

// pairs lists each linked pair once, canonicalized and sorted.
func (l links) pairs() []cell.Pair {
	seen := make(map[cell.Pair]struct{}, len(l)/2)
	out := make([]cell.Pair, 0, len(l)/2)
	for a, b := range l {
		p := cell.NewPair(a, b)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	cell.SortPairs(out)
	return out
}
