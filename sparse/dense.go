// SPDX-License-Identifier: MIT

// Package sparse - dense 2-D adapters: ingest a rectangular slice into a
// sparse matrix and materialize a dense window back out.
//
// AI-Hints:
//   - FromDense2D stores only cells differing from defaultValue; a mostly
//     default grid costs almost nothing.
//   - Pair ToDense2D with a small window for rendering; never materialize
//     the full conceptual space of a sparse matrix.
package sparse

// FromDense2D builds a 2-D sparse matrix from a rectangular grid.
// Axis 0 is the row index, axis 1 the column index, so grid[r][c] lands at
// coordinate (r, c). Only cells differing from defaultValue are stored.
//
// Returns ErrEmptyDense when the grid has no rows or no columns, and
// ErrRagged when row lengths differ.
//
// Complexity: O(R·C) scan; memory O(occupied).
func FromDense2D[V comparable](grid [][]V, defaultValue V, opts ...Option) (*Matrix[V], error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyDense
	}
	width := len(grid[0])
	for _, row := range grid[1:] {
		if len(row) != width {
			return nil, ErrRagged
		}
	}

	m := New[V](2, defaultValue, opts...)
	for r, row := range grid {
		for c, v := range row {
			if v != defaultValue {
				m.Set(v, r, c)
			}
		}
	}

	return m, nil
}

// ToDense2D materializes a rows×cols dense window of a 2-D matrix,
// starting at coordinate (row0, col0); unoccupied cells are filled with
// the matrix default.
//
// Returns ErrDimensionality when m is not 2-D, and ErrWindow when the
// origin is negative or either extent is non-positive.
//
// Complexity: O(rows·cols·log L).
func ToDense2D[V comparable](m *Matrix[V], row0, col0, rows, cols int) ([][]V, error) {
	if m.Dims() != 2 {
		return nil, ErrDimensionality
	}
	if row0 < 0 || col0 < 0 || rows <= 0 || cols <= 0 {
		return nil, ErrWindow
	}

	out := make([][]V, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]V, cols)
		for c := 0; c < cols; c++ {
			out[r][c] = m.Get(row0+r, col0+c)
		}
	}

	return out, nil
}
