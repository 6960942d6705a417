// SPDX-License-Identifier: MIT

// Package sparse - chained per-axis accessors.
//
// Each At call narrows one axis: it extends the accumulated coordinate
// prefix by value and hands the result forward, so sibling chains built
// from one shared prefix never interfere. Axes-remaining bookkeeping is a
// runtime counter rather than a compile-time parameter (Go generics carry
// no const arity), and contract violations — subscripting past the last
// axis, or reading/writing before the last axis is bound — panic as
// programmer errors.
//
// Lifetime contract: a Cursor, RCursor or View borrows the matrix that
// produced it. They are meant to live inside a single indexing expression;
// retaining one past the matrix's lifetime is undefined.
package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/coord"
)

// Cursor is a transient accessor positioned on a coordinate prefix of a
// Matrix. While axes remain unbound, At produces the next, narrower
// Cursor; once every axis is bound, the Cursor is the terminal value
// proxy and Get/Set mediate the single cell it denotes.
//
// Cursors are cheap values: copy them freely, never retain them.
type Cursor[V comparable] struct {
	m      *Matrix[V]
	prefix coord.Key // accumulated components, len(prefix) axes bound so far
}

// At begins a mutable access chain by binding axis 0 to i.
// Follow with one At per remaining axis; the terminal cursor's Get/Set
// access the cell. Panics if i is negative.
//
// Complexity: O(1) per step (prefix copy of bound axes).
func (m *Matrix[V]) At(i int) Cursor[V] {
	return Cursor[V]{m: m, prefix: coord.Key{}.Extend(i)}
}

// At binds the next axis to i and returns the narrowed cursor.
// Panics if every axis is already bound, or if i is negative.
func (c Cursor[V]) At(i int) Cursor[V] {
	if c.remaining() == 0 {
		panic(fmt.Sprintf("sparse: all %d axes already bound, cannot subscript further", c.m.dims))
	}

	return Cursor[V]{m: c.m, prefix: c.prefix.Extend(i)}
}

// Get reads the cell the fully-bound cursor denotes, yielding the default
// value when the cell is unoccupied. Panics if axes remain unbound.
//
// Complexity: O(N·log L).
func (c Cursor[V]) Get() V {
	c.mustTerminal("Get")

	return c.m.store.lookup(c.prefix, c.m.def)
}

// Set writes v to the cell the fully-bound cursor denotes. Writing the
// matrix default erases the cell instead of storing it; writing any other
// value inserts or overwrites. Panics if axes remain unbound.
//
// Complexity: O(N·log L + L) worst case.
func (c Cursor[V]) Set(v V) {
	c.mustTerminal("Set")
	c.m.store.put(c.prefix, v, c.m.def)
}

// Remaining returns the number of axes still to be bound before Get/Set
// become legal. Zero means the cursor is terminal.
func (c Cursor[V]) Remaining() int { return c.remaining() }

func (c Cursor[V]) remaining() int { return c.m.dims - len(c.prefix) }

func (c Cursor[V]) mustTerminal(op string) {
	if r := c.remaining(); r != 0 {
		panic(fmt.Sprintf("sparse: %s on a cursor with %d of %d axes unbound", op, r, c.m.dims))
	}
}

// View is a read-only projection of a Matrix: the same store, reached
// through accessors that expose no mutation. Use it to hand a matrix to
// code that must observe but never write.
type View[V comparable] struct {
	m *Matrix[V]
}

// View returns the read-only projection of m. The view borrows m and
// shares its store: writes through m remain visible through the view.
// Complexity: O(1).
func (m *Matrix[V]) View() View[V] { return View[V]{m: m} }

// Dims returns the dimensionality of the viewed matrix.
func (v View[V]) Dims() int { return v.m.dims }

// Default returns the viewed matrix's default value.
func (v View[V]) Default() V { return v.m.def }

// Len returns the number of occupied cells in the viewed matrix.
func (v View[V]) Len() int { return v.m.store.size() }

// Get is the one-shot full-coordinate read; see Matrix.Get.
func (v View[V]) Get(axes ...int) V { return v.m.Get(axes...) }

// At begins a read-only access chain by binding axis 0 to i.
func (v View[V]) At(i int) RCursor[V] {
	return RCursor[V]{m: v.m, prefix: coord.Key{}.Extend(i)}
}

// RCursor is the read-only counterpart of Cursor: At narrows one axis per
// call and the terminal cursor exposes Get only, so no write can originate
// from a View's access chain.
type RCursor[V comparable] struct {
	m      *Matrix[V]
	prefix coord.Key
}

// At binds the next axis to i and returns the narrowed read-only cursor.
// Panics if every axis is already bound, or if i is negative.
func (c RCursor[V]) At(i int) RCursor[V] {
	if c.remaining() == 0 {
		panic(fmt.Sprintf("sparse: all %d axes already bound, cannot subscript further", c.m.dims))
	}

	return RCursor[V]{m: c.m, prefix: c.prefix.Extend(i)}
}

// Get reads the cell the fully-bound cursor denotes, yielding the default
// value when the cell is unoccupied. Panics if axes remain unbound.
func (c RCursor[V]) Get() V {
	if r := c.remaining(); r != 0 {
		panic(fmt.Sprintf("sparse: Get on a cursor with %d of %d axes unbound", r, c.m.dims))
	}

	return c.m.store.lookup(c.prefix, c.m.def)
}

// Remaining returns the number of axes still to be bound.
func (c RCursor[V]) Remaining() int { return c.remaining() }

func (c RCursor[V]) remaining() int { return c.m.dims - len(c.prefix) }
