package state

import "sort"

// ViewedSet records which hotspots of the current artwork were opened.
type ViewedSet map[int]struct{}

// NewViewedSet creates an empty set.
func NewViewedSet() ViewedSet {
	return make(ViewedSet)
}

// Add marks hotspot i as viewed.
func (v ViewedSet) Add(i int) {
	v[i] = struct{}{}
}

// Has reports whether hotspot i was viewed.
func (v ViewedSet) Has(i int) bool {
	_, ok := v[i]
	return ok
}

// Len returns the number of viewed hotspots.
func (v ViewedSet) Len() int {
	return len(v)
}

// Clear empties the set.
func (v ViewedSet) Clear() {
	clear(v)
}

// Indices returns the viewed hotspot indices in ascending order.
func (v ViewedSet) Indices() []int {
	out := make([]int, 0, len(v))
	for i := range v {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
