package model

// DefaultHistoryDepth is how many recent generation hashes a History keeps
const DefaultHistoryDepth = 5

// History remembers recent generation hashes for cycle detection
type History struct {
	depth  int
	hashes []string
}

// NewHistory returns a History keeping up to depth hashes
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Push records g and drops the oldest entry once full
func (h *History) Push(g Generation) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
}

// Len returns how many hashes are stored
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether g repeats one of the last three recorded states,
// which covers still lifes and oscillators of period 2 and 3.
func (h *History) IsStagnant(g Generation) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.Hash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}
