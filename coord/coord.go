// Package coord: the Key type and its ordering primitives.
package coord

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is an N-axis coordinate: a tuple of non-negative integers identifying
// one cell of an N-dimensional grid, axis 0 first.
//
// Keys are immutable by contract: once constructed they must never be
// mutated, because containers index ordered storage by them. Every method
// treats the receiver as read-only; Extend and Clone return fresh slices
// that never alias the receiver.
type Key []int

// Make builds a Key from the given axis components.
// The input is copied, so callers may reuse the argument slice freely.
// Panics if any component is negative: the coordinate space is the
// non-negative integer lattice, and a negative index is a programmer error.
//
// Complexity: O(N).
func Make(axes ...int) Key {
	k := make(Key, len(axes))
	for i, a := range axes {
		if a < 0 {
			panic(fmt.Sprintf("coord: negative component %d at axis %d", a, i))
		}
		k[i] = a
	}

	return k
}

// Arity returns the number of axis components in k.
// Complexity: O(1).
func (k Key) Arity() int { return len(k) }

// Axis returns the i-th axis component (axis 0 is the most significant).
// Out-of-range i panics, mirroring slice indexing.
// Complexity: O(1).
func (k Key) Axis(i int) int { return k[i] }

// Extend returns a new Key with component i appended after k's components.
// The receiver is never modified and the result never aliases it, so a
// chained accessor may extend the same prefix repeatedly without
// interference. Panics if i is negative.
//
// Complexity: O(N).
func (k Key) Extend(i int) Key {
	if i < 0 {
		panic(fmt.Sprintf("coord: negative component %d", i))
	}
	next := make(Key, len(k)+1)
	copy(next, k)
	next[len(k)] = i

	return next
}

// Clone returns an independent copy of k.
// Complexity: O(N).
func (k Key) Clone() Key {
	c := make(Key, len(k))
	copy(c, k)

	return c
}

// Compare orders a and b lexicographically with axis 0 most significant:
// it returns -1 if a sorts before b, +1 if after, and 0 if the keys are
// equal. When one key is a strict prefix of the other, the shorter key
// sorts first; within a single container all keys share one arity, so the
// prefix case only arises when keys from different containers meet.
//
// Complexity: O(min(len(a), len(b))).
func Compare(a, b Key) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// Equal reports whether k and other have the same arity and pairwise equal
// components.
// Complexity: O(N).
func (k Key) Equal(other Key) bool { return Compare(k, other) == 0 }

// String renders k as "(a, b, c)".
func (k Key) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, a := range k {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(a))
	}
	sb.WriteByte(')')

	return sb.String()
}
