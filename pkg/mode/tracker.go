package mode

// Tracker accumulates value frequencies for a single window and keeps the
// current mode. The best value and its count are plain copies, never
// references into the counts map, so a Tracker stays valid on its own.
type Tracker struct {
	counts    map[int]int
	best      int
	bestCount int
	seen      bool
}

func NewTracker() *Tracker {
	return &Tracker{counts: make(map[int]int)}
}

// Add records one occurrence of v. When counts tie, the smaller value wins.
func (t *Tracker) Add(v int) {
	t.counts[v]++
	n := t.counts[v]
	if n > t.bestCount {
		t.best = v
		t.bestCount = n
		t.seen = true
	} else if n == t.bestCount && v < t.best {
		t.best = v
	}
}

// Build scans window left to right. Zero entries mean "no reading" and are
// skipped entirely.
func Build(window []int) *Tracker {
	t := NewTracker()
	for _, v := range window {
		if v != 0 {
			t.Add(v)
		}
	}
	return t
}

// Mode returns the most frequent value seen so far, ties broken toward the
// smaller value. ok is false until the first non-zero value is added.
func (t *Tracker) Mode() (value int, ok bool) {
	return t.best, t.seen
}

// Best exposes the current best value and its count alongside the presence
// flag, mainly for diagnostics.
func (t *Tracker) Best() (value, count int, ok bool) {
	return t.best, t.bestCount, t.seen
}
