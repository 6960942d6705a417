// SPDX-License-Identifier: MIT

// Package sparse - whole-matrix operations: one-shot access, bookkeeping,
// cloning, equality and rendering.
package sparse

import (
	"fmt"
	"strings"
)

// Get reads the cell at the full coordinate axes, one component per axis
// in order, yielding the default value when the cell is unoccupied. It is
// the one-shot equivalent of the At chain and is total over the coordinate
// space. Panics on arity mismatch or a negative component.
//
// Complexity: O(N·log L).
func (m *Matrix[V]) Get(axes ...int) V {
	return m.store.lookup(m.key(axes), m.def)
}

// Set writes v to the cell at the full coordinate axes. Writing the matrix
// default erases the cell (the store never materializes default-valued
// cells); any other value inserts or overwrites. Panics on arity mismatch
// or a negative component.
//
// Complexity: O(N·log L + L) worst case.
func (m *Matrix[V]) Set(v V, axes ...int) {
	m.store.put(m.key(axes), v, m.def)
}

// Len returns the number of occupied cells — exactly the entries a full
// iteration visits.
// Complexity: O(1).
func (m *Matrix[V]) Len() int { return m.store.size() }

// Clear erases every occupied cell: Len becomes 0 and every coordinate
// reads as the default value again. Dimensionality and default survive.
// Complexity: O(1).
func (m *Matrix[V]) Clear() { m.store.clear() }

// Clone returns a deep, fully independent copy of m: same dimensionality,
// same default, duplicated entry set. Mutating either matrix afterwards
// never affects the other.
//
// Complexity: O(L·N).
func (m *Matrix[V]) Clone() *Matrix[V] {
	return &Matrix[V]{dims: m.dims, def: m.def, store: m.store.clone()}
}

// Equal reports whether m and other hold identical entry sets: the same
// coordinates mapped to the same values, regardless of write order.
// Matrices of different dimensionality are never equal; the default value
// is a construction parameter and is not compared.
//
// Complexity: O(L·N).
func (m *Matrix[V]) Equal(other *Matrix[V]) bool {
	if m == other {
		return true
	}
	if other == nil || m.dims != other.dims {
		return false
	}

	return m.store.equal(&other.store)
}

// String renders the occupied cells in iteration order, e.g.
// "sparse[2]{(0, 0)=5, (1, 1)=7}". Intended for debugging and logs, not
// as a stable serialization format.
func (m *Matrix[V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "sparse[%d]{", m.dims)
	for i, e := range m.store.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", e.key, e.val)
	}
	sb.WriteByte('}')

	return sb.String()
}
