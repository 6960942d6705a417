// SPDX-License-Identifier: MIT

// Package sparse - ordered entry store (the storage engine).
//
// Purpose:
//   - Keep the occupied cells as a slice sorted by coord.Compare, so the
//     ascending lexicographic walk the container promises is simply the
//     natural slice order.
//   - Concentrate the no-default-entries invariant in one place: put is the
//     only mutation path besides clear, and put erases instead of storing
//     whenever the incoming value equals the default.
//   - Guarantee algorithmic determinism (binary search + ordered insert,
//     no map iteration anywhere).
//
// Complexity quicksheet:
//   - lookup: O(N·log L); put: O(N·log L + L) worst case (memmove on
//     insert/erase); size, clear: O(1); clone, equal: O(L·N) —
//     N = key arity, L = occupied cells.
package sparse

import (
	"sort"

	"github.com/katalvlaran/sparsemat/coord"
)

// entry is one occupied cell: a coordinate key and its non-default value.
type entry[V comparable] struct {
	key coord.Key
	val V
}

// entrySet is an ordered associative map from coordinate key to value,
// realized as a slice kept sorted by coord.Compare. The zero value is an
// empty, ready-to-use set.
//
// Invariant: no entry's val equals the owning matrix's default value, and
// keys are strictly increasing (no duplicates). Both are maintained by put;
// nothing else mutates the slice.
type entrySet[V comparable] struct {
	entries []entry[V]
}

// search locates k: it returns the index holding k and true when present,
// or the ordered insertion index for k and false when absent.
func (s *entrySet[V]) search(k coord.Key) (int, bool) {
	i := sort.Search(len(s.entries), func(j int) bool {
		return coord.Compare(s.entries[j].key, k) >= 0
	})
	if i < len(s.entries) && coord.Compare(s.entries[i].key, k) == 0 {
		return i, true
	}

	return i, false
}

// lookup returns the stored value for k, or def when k is unoccupied.
// Total over the coordinate space; never fails.
func (s *entrySet[V]) lookup(k coord.Key, def V) V {
	if i, ok := s.search(k); ok {
		return s.entries[i].val
	}

	return def
}

// put stores v at k, or erases k when v equals def (writing the default is
// deletion, not storage). The key is retained as given: callers pass fresh,
// never-mutated keys.
func (s *entrySet[V]) put(k coord.Key, v, def V) {
	i, ok := s.search(k)
	if v == def {
		if ok {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
		}
		return
	}
	if ok {
		s.entries[i].val = v
		return
	}
	// Ordered insert at i.
	s.entries = append(s.entries, entry[V]{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = entry[V]{key: k, val: v}
}

// size returns the number of occupied cells.
func (s *entrySet[V]) size() int { return len(s.entries) }

// clear drops every entry; the backing array is released to the collector.
func (s *entrySet[V]) clear() { s.entries = nil }

// clone returns a fully independent deep copy: keys are re-allocated so
// later mutation of either set cannot reach the other.
func (s *entrySet[V]) clone() entrySet[V] {
	if len(s.entries) == 0 {
		return entrySet[V]{}
	}
	out := entrySet[V]{entries: make([]entry[V], len(s.entries))}
	for i, e := range s.entries {
		out.entries[i] = entry[V]{key: e.key.Clone(), val: e.val}
	}

	return out
}

// equal reports whether both sets hold identical (key, value) entries.
// Both slices are sorted, so a single parallel pass suffices.
func (s *entrySet[V]) equal(o *entrySet[V]) bool {
	if len(s.entries) != len(o.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i].val != o.entries[i].val || !s.entries[i].key.Equal(o.entries[i].key) {
			return false
		}
	}

	return true
}
