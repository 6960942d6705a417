// File: sparse/example_test.go
package sparse_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
)

////////////////////////////////////////////////////////////////////////////////
// Example: the classic diagonal demo
////////////////////////////////////////////////////////////////////////////////

// Example populates both diagonals of a conceptual 10×10 grid, renders the
// inner [1,1]..[8,8] window, then dumps every occupied cell.
// Scenario:
//
//   - main diagonal: cell (i,i) = i — note (0,0) = 0 equals the default and
//     is therefore never stored
//   - anti diagonal: cell (i,9−i) = 9−i — likewise (9,0) = 0 vanishes
//   - 18 cells end up occupied out of the 100 addressed
//
// Complexity: O(writes·log L) population, O(64·log L) window render.
func Example() {
	const n = 10
	m := sparse.New[int](2, 0)

	// Main diagonal.
	for i := 0; i < n; i++ {
		m.At(i).At(i).Set(i)
	}
	// Anti diagonal.
	for i := 0; i < n; i++ {
		m.At(i).At(n - 1 - i).Set(n - 1 - i)
	}

	// Render the inner window; defaults fill the unoccupied cells.
	window, _ := sparse.ToDense2D(m, 1, 1, 8, 8)
	for _, row := range window {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%3d", v)
		}
		fmt.Println(strings.Join(cells, " "))
	}

	fmt.Println(m.Len())

	// Dump occupied cells in ascending coordinate order.
	for k, v := range m.All() {
		fmt.Printf("[%d, %d] = %d\n", k.Axis(0), k.Axis(1), v)
	}

	// Output:
	//   1   0   0   0   0   0   0   8
	//   0   2   0   0   0   0   7   0
	//   0   0   3   0   0   6   0   0
	//   0   0   0   4   5   0   0   0
	//   0   0   0   4   5   0   0   0
	//   0   0   3   0   0   6   0   0
	//   0   2   0   0   0   0   7   0
	//   1   0   0   0   0   0   0   8
	// 18
	// [0, 9] = 9
	// [1, 1] = 1
	// [1, 8] = 8
	// [2, 2] = 2
	// [2, 7] = 7
	// [3, 3] = 3
	// [3, 6] = 6
	// [4, 4] = 4
	// [4, 5] = 5
	// [5, 4] = 4
	// [5, 5] = 5
	// [6, 3] = 3
	// [6, 6] = 6
	// [7, 2] = 2
	// [7, 7] = 7
	// [8, 1] = 1
	// [8, 8] = 8
	// [9, 9] = 9
}

////////////////////////////////////////////////////////////////////////////////
// Example: chained access in three dimensions
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_At shows one subscript per axis reaching a single cell of
// a 3-D matrix, and that unwritten coordinates read as the default.
func ExampleMatrix_At() {
	m := sparse.New[int](3, 0)
	m.At(1).At(0).At(2).Set(9)

	fmt.Println(m.At(1).At(0).At(2).Get())
	fmt.Println(m.Get(0, 0, 0))
	fmt.Println(m.Len())

	// Output:
	// 9
	// 0
	// 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: dense ingestion
////////////////////////////////////////////////////////////////////////////////

// ExampleFromDense2D ingests a rectangular grid, keeping only the cells
// that differ from the default.
func ExampleFromDense2D() {
	grid := [][]int{
		{0, 1, 0},
		{2, 0, 0},
	}
	m, _ := sparse.FromDense2D(grid, 0)

	fmt.Println(m.Len())
	fmt.Println(m)

	// Output:
	// 2
	// sparse[2]{(0, 1)=1, (1, 0)=2}
}

////////////////////////////////////////////////////////////////////////////////
// Example: self-compacting writes
////////////////////////////////////////////////////////////////////////////////

// ExampleCursor_Set demonstrates that writing the default value retracts
// storage instead of persisting it.
func ExampleCursor_Set() {
	m := sparse.New[int](2, 0)
	m.At(2).At(2).Set(3)
	fmt.Println(m.Len())

	m.At(2).At(2).Set(0) // writing the default erases the cell
	fmt.Println(m.Len())

	// Output:
	// 1
	// 0
}
