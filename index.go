package vlist

import "sort"

// Entry is one normalized item: its position in the sequence, its height,
// and the cumulative offset of its top edge within the full content.
type Entry[T any] struct {
	Item      T
	Index     int     // Zero-based position in the ordered sequence
	Height    float32 // Pixels; callers must supply finite, non-negative values
	OffsetTop float32 // Sum of the heights of all preceding items
}

// Bottom returns the offset of the entry's bottom edge.
func (e Entry[T]) Bottom() float32 {
	return e.OffsetTop + e.Height
}

// Index holds the normalized view of an ordered item sequence: a key lookup
// table plus the ordered entries with precomputed cumulative offsets.
//
// An Index is immutable once built. Heights may depend on arbitrary caller
// state, so there is no incremental patching: rebuild with Normalize whenever
// the item sequence or either callback changes.
type Index[T any, K comparable] struct {
	order []Entry[T]
	byKey map[K]int // key -> position in order
	total float32
}

// Normalize builds an Index from an ordered item sequence in a single forward
// pass. getID must return a stable, unique key per item (duplicates are not
// validated; the last occurrence wins). getHeight must return a finite,
// non-negative pixel height; violating that is a precondition error and the
// resulting offsets are undefined.
func Normalize[T any, K comparable](items []T, getID func(T) K, getHeight func(T) float32) *Index[T, K] {
	ix := &Index[T, K]{
		order: make([]Entry[T], len(items)),
		byKey: make(map[K]int, len(items)),
	}

	var running float32
	for i, item := range items {
		h := getHeight(item)
		ix.order[i] = Entry[T]{
			Item:      item,
			Index:     i,
			Height:    h,
			OffsetTop: running,
		}
		ix.byKey[getID(item)] = i
		running += h
	}
	ix.total = running

	return ix
}

// Len returns the number of entries.
func (ix *Index[T, K]) Len() int {
	return len(ix.order)
}

// TotalHeight returns the summed height of all items.
func (ix *Index[T, K]) TotalHeight() float32 {
	return ix.total
}

// MaxOffset returns the largest valid scroll offset for the given viewport
// height: total content height minus viewport height, floored at zero.
func (ix *Index[T, K]) MaxOffset(viewportHeight float32) float32 {
	return maxf(0, ix.total-viewportHeight)
}

// Lookup returns the entry for the given key.
func (ix *Index[T, K]) Lookup(key K) (Entry[T], bool) {
	i, ok := ix.byKey[key]
	if !ok {
		return Entry[T]{}, false
	}
	return ix.order[i], true
}

// At returns the entry at the given sequence position.
// The position must be in [0, Len()).
func (ix *Index[T, K]) At(i int) Entry[T] {
	return ix.order[i]
}

// Entries returns the ordered entries. The slice is shared; do not modify.
func (ix *Index[T, K]) Entries() []Entry[T] {
	return ix.order
}

// Range returns the half-open entry range [first, last) intersecting the
// window [top, top+height) of content space, widened by overscan rows on each
// side and clamped to valid positions. Zero-height entries at the window edge
// are skipped naturally by the bottom-edge comparison.
func (ix *Index[T, K]) Range(top, height float32, overscan int) (first, last int) {
	n := len(ix.order)
	if n == 0 || height <= 0 {
		return 0, 0
	}

	// First entry whose bottom edge is below the window top.
	first = sort.Search(n, func(i int) bool {
		return ix.order[i].Bottom() > top
	})
	// First entry whose top edge is at or past the window bottom.
	last = sort.Search(n, func(i int) bool {
		return ix.order[i].OffsetTop >= top+height
	})

	first -= overscan
	last += overscan
	if first < 0 {
		first = 0
	}
	if last > n {
		last = n
	}
	if first > last {
		first = last
	}
	return first, last
}
