package model

const defaultHistorySize = 5

// History remembers hashes of recent generations to spot still lifes and
// short-period oscillators.
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps the last size generations; size < 2 selects the default.
func NewHistory(size int) *History {
	if size < 2 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record appends the current state of g.
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Period returns how many generations ago g's current state was last seen,
// or 0 if it is not in the history.
func (h *History) Period(g *Grid) int {
	current := g.Hash()
	for back := 1; back <= len(h.hashes); back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return back
		}
	}
	return 0
}

// Reset forgets all recorded generations.
func (h *History) Reset() {
	h.hashes = nil
}
