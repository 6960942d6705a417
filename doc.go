// Package sparsemat is an in-memory playground for N-dimensional sparse
// data — coordinate-addressed containers that store only the cells that
// differ from a configurable default value.
//
// 🚀 What is sparsemat?
//
//	A small, deterministic library that brings together:
//		• Coordinate keys: immutable N-int tuples with a lexicographic total order
//		• Sparse containers: chained per-axis accessors over an ordered entry store
//		• Self-compacting storage: writing the default value retracts the cell
//		• Ordered iteration: ascending lexicographic walks over occupied cells only
//		• Dense adapters: 2-D slice ⇄ sparse converters for ingestion and rendering
//
// ✨ Why choose sparsemat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic guarantees – iteration order is always lexicographic, axis 0 first
//   - Pure Go – no cgo, no hidden deps
//   - Pay for what you store – unbounded coordinate space, storage ∝ occupied cells
//
// Under the hood, everything is organized under two subpackages:
//
//	coord/  — coordinate Key type: construction, extension, comparison
//	sparse/ — Matrix container, cursor chain, iterators & dense adapters
//
// Quick ASCII example (2-D, default 0, two occupied cells):
//
//	    0 1 2
//	  ┌───────
//	0 │ 5 . .
//	1 │ . 7 .
//	2 │ . . .
//
//	m := sparse.New[int](2, 0)
//	m.At(0).At(0).Set(5)
//	m.At(1).At(1).Set(7)
//	m.Len() // 2 — only the non-default cells are stored
//
// See the sparse package documentation for the full API surface.
package sparsemat
