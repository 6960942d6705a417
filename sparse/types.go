// SPDX-License-Identifier: MIT

// Package sparse: core Matrix type and constructor.
// This file declares Matrix and New; the access chain lives in cursor.go,
// the ordered store in store.go, iteration in iterator.go, and the dense
// 2-D adapters in dense.go. Errors and options live in dedicated files
// (errors.go, options.go) per the global conventions.
package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/coord"
)

// Matrix is a generic N-dimensional sparse container over element type V.
//
// Dimensionality and the default value are fixed at construction. The
// matrix owns its entry store exclusively; cursors and iterators borrow it
// and must not outlive the matrix. The zero Matrix value is not usable —
// construct with New (or FromDense2D).
type Matrix[V comparable] struct {
	dims  int         // number of axes, fixed at construction, ≥ 1
	def   V           // value implicitly held by every unoccupied cell
	store entrySet[V] // ordered entry set; sole source of truth for occupancy
}

// New returns an empty Matrix with the given dimensionality and default
// value. Every cell of the coordinate space initially reads as
// defaultValue and nothing is stored.
//
// Panics if dims < 1 (programmer error: a container needs at least one
// axis). Options follow the functional-option pattern; see WithCapacity.
//
// Complexity: O(1) (O(capacity) allocation when WithCapacity is given).
func New[V comparable](dims int, defaultValue V, opts ...Option) *Matrix[V] {
	if dims < 1 {
		panic(fmt.Sprintf("sparse: dimensionality must be at least 1, got %d", dims))
	}
	cfg := gatherOptions(opts...)
	m := &Matrix[V]{dims: dims, def: defaultValue}
	if cfg.capacity > 0 {
		m.store.entries = make([]entry[V], 0, cfg.capacity)
	}

	return m
}

// Dims returns the number of axes of the matrix.
// Complexity: O(1).
func (m *Matrix[V]) Dims() int { return m.dims }

// Default returns the value implicitly held by every unoccupied cell.
// Complexity: O(1).
func (m *Matrix[V]) Default() V { return m.def }

// key validates a full coordinate against the matrix dimensionality and
// materializes it as a coord.Key. Arity mismatch and negative components
// panic: both are programmer errors, the coordinate space itself is
// unbounded and cannot be violated.
func (m *Matrix[V]) key(axes []int) coord.Key {
	if len(axes) != m.dims {
		panic(fmt.Sprintf("sparse: want %d axis components, got %d", m.dims, len(axes)))
	}

	return coord.Make(axes...)
}
