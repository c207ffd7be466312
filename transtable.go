package dds

// Bounds is what the transposition table remembers about a position: the
// search has established that the side on lead can take at least
// AtLeast and at most AtMost of the tricks remaining from here, under
// optimal defense. AtMost of -1 means no upper bound has been
// established yet.
type Bounds struct {
	AtLeast int
	AtMost  int
}

// TransTable caches [Bounds] by [TTKey] within a single strain's search
// (C9). Bounds are always relative to the side on lead at that key, so
// the table must be cleared between strains (spec §6): the same
// distribution descriptor means something different once trumps change.
type TransTable struct {
	entries map[TTKey]Bounds
}

// NewTransTable returns an empty table.
func NewTransTable() *TransTable {
	return &TransTable{entries: make(map[TTKey]Bounds)}
}

// Lookup returns the bounds stored for key, if any.
func (t *TransTable) Lookup(key TTKey) (Bounds, bool) {
	b, ok := t.entries[key]
	if !ok {
		return Bounds{AtLeast: 0, AtMost: -1}, false
	}
	return b, true
}

// RaiseLowerBound tightens key's lower bound to at least atLeast.
func (t *TransTable) RaiseLowerBound(key TTKey, atLeast int) {
	b, ok := t.Lookup(key)
	if !ok || atLeast > b.AtLeast {
		b.AtLeast = atLeast
	}
	t.entries[key] = b
}

// LowerUpperBound tightens key's upper bound to at most atMost.
func (t *TransTable) LowerUpperBound(key TTKey, atMost int) {
	b, ok := t.Lookup(key)
	if !ok || b.AtMost < 0 || atMost < b.AtMost {
		b.AtMost = atMost
	}
	t.entries[key] = b
}

// Clear empties the table, for reuse across strains.
func (t *TransTable) Clear() {
	t.entries = make(map[TTKey]Bounds)
}

// Len reports the number of cached positions, for statistics.
func (t *TransTable) Len() int {
	return len(t.entries)
}
