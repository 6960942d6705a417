// Package sparse provides a generic N-dimensional sparse matrix: a
// coordinate-addressed container that stores only the cells whose value
// differs from a per-matrix default.
//
// What & Why:
//
//	A Matrix[V] behaves like an unbounded N-dimensional grid in which every
//	cell initially holds the default value. Reading any coordinate is a
//	total operation; writing a non-default value occupies exactly one entry;
//	writing the default value back retracts the entry. Storage cost is
//	therefore proportional to the number of occupied cells, never to the
//	addressed extent. The central invariant, maintained unconditionally by
//	every write path: no stored entry's value ever equals the default.
//
// Access model:
//
//	Cells are reached with chained per-axis accessors, one subscript per
//	axis, mirroring nested-array syntax:
//
//		m := sparse.New[int](3, 0)      // 3-D, default 0
//		m.At(1).At(0).At(2).Set(9)      // write
//		v := m.At(1).At(0).At(2).Get()  // read → 9
//		m.Get(1, 0, 2)                  // one-shot form of the same walk
//
//	Each At narrows one axis and returns a transient Cursor carrying the
//	accumulated coordinate prefix by value; the final axis yields the
//	terminal cursor, whose Get/Set mediate the single cell access. Cursors
//	borrow the matrix and must not be retained past the indexing expression
//	that produced them. View() opens the equivalent read-only path.
//
// Iteration:
//
//	Iter, All and Entries walk exactly the occupied cells in ascending
//	lexicographic coordinate order (axis 0 most significant). Mutating the
//	matrix during an open walk is undefined; restart the walk instead.
//
// Determinism & Concurrency:
//
//	Iteration order is a contract, not an accident: two matrices with equal
//	entry sets produce identical walks. The container is unsynchronized;
//	callers that share one instance across goroutines must serialize access
//	externally.
//
// Complexity quicksheet:
//
//	Get: O(N + log L); Set: O(N + L) worst case (ordered insert/erase);
//	Len, Clear: O(1); Clone, Equal: O(L·N); full iteration: O(L·N) —
//	where N is dimensionality and L the number of occupied cells.
package sparse
