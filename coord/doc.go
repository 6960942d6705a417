// Package coord defines the coordinate keys used by sparsemat containers.
//
// What & Why:
//
//	A Key is an immutable tuple of N non-negative integers identifying one
//	cell of an N-dimensional grid. Keys are the storage keys of the sparse
//	containers in the sparse package, and their lexicographic total order
//	(axis 0 most significant) is what makes container iteration
//	deterministic. The package is deliberately independent of any element
//	type: index components are plain ints regardless of what a container
//	stores.
//
// Complexity:
//
//	Make, Extend, Clone, Compare, Equal and String run in O(N) time for an
//	N-axis key; Arity and Axis are O(1). No function allocates more than
//	one slice.
package coord
