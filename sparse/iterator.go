// SPDX-License-Identifier: MIT

// Package sparse - ordered iteration over occupied cells.
//
// All three walk forms (Iter, All, Entries) visit exactly the occupied
// cells in ascending lexicographic coordinate order, axis 0 most
// significant — never the full conceptual coordinate space. Iteration is a
// live view over the store: mutating the matrix while a walk is open is
// undefined; finish or abandon the walk first, then restart it.
package sparse

import (
	"iter"

	"github.com/katalvlaran/sparsemat/coord"
)

// Entry is the flattened view of one occupied cell produced by iteration:
// the N coordinate components followed by the stored value. The Key is a
// fresh copy on every dereference; callers may keep or modify it freely.
type Entry[V comparable] struct {
	Key   coord.Key
	Value V
}

// Iterator is a single-pass forward cursor over a matrix's occupied cells
// in ascending coordinate order. Obtain one with Matrix.Iter or View.Iter;
// restart by obtaining a fresh one.
//
// Usage:
//
//	for it := m.Iter(); it.Next(); {
//		e := it.Entry()
//		…
//	}
type Iterator[V comparable] struct {
	set *entrySet[V]
	pos int // index of the current entry; -1 before the first Next
}

// Iter returns an iterator positioned before the first occupied cell.
// Complexity: O(1).
func (m *Matrix[V]) Iter() *Iterator[V] {
	return &Iterator[V]{set: &m.store, pos: -1}
}

// Iter returns a read-only walk over the viewed matrix; identical order
// and contents to Matrix.Iter.
func (v View[V]) Iter() *Iterator[V] {
	return &Iterator[V]{set: &v.m.store, pos: -1}
}

// Next advances to the next occupied cell and reports whether one exists.
// It must be called before the first Entry.
// Complexity: O(1).
func (it *Iterator[V]) Next() bool {
	if it.pos+1 >= it.set.size() {
		it.pos = it.set.size() // park at the end sentinel
		return false
	}
	it.pos++

	return true
}

// Entry returns the current cell as a flattened coordinates-plus-value
// view. Panics when the iterator is not positioned on a cell (before the
// first Next or after exhaustion).
func (it *Iterator[V]) Entry() Entry[V] {
	if it.pos < 0 || it.pos >= it.set.size() {
		panic("sparse: Entry called on an unpositioned iterator")
	}
	e := it.set.entries[it.pos]

	return Entry[V]{Key: e.key.Clone(), Value: e.val}
}

// Key returns the current cell's coordinate; shorthand for Entry().Key.
func (it *Iterator[V]) Key() coord.Key { return it.Entry().Key }

// Value returns the current cell's value; shorthand for Entry().Value.
func (it *Iterator[V]) Value() V { return it.Entry().Value }

// All returns a range-over-func walk over the occupied cells in ascending
// coordinate order:
//
//	for k, v := range m.All() {
//		…
//	}
//
// The yielded Key is a fresh copy each step. Same mutation caveat as Iter.
func (m *Matrix[V]) All() iter.Seq2[coord.Key, V] {
	return m.store.all()
}

// All returns the read-only range-over-func walk; see Matrix.All.
func (v View[V]) All() iter.Seq2[coord.Key, V] {
	return v.m.store.all()
}

func (s *entrySet[V]) all() iter.Seq2[coord.Key, V] {
	return func(yield func(coord.Key, V) bool) {
		for _, e := range s.entries {
			if !yield(e.key.Clone(), e.val) {
				return
			}
		}
	}
}

// Entries materializes the occupied cells as a snapshot slice in ascending
// coordinate order. Unlike Iter/All, the snapshot is detached: mutating
// the matrix afterwards does not disturb it.
//
// Complexity: O(L·N).
func (m *Matrix[V]) Entries() []Entry[V] {
	out := make([]Entry[V], len(m.store.entries))
	for i, e := range m.store.entries {
		out[i] = Entry[V]{Key: e.key.Clone(), Value: e.val}
	}

	return out
}
