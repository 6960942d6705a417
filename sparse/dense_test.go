// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the dense 2-D adapters.
package sparse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

//----------------------------------------------------------------------------//
// FromDense2D
//----------------------------------------------------------------------------//

// TestFromDense2D_Errors verifies empty and ragged inputs are rejected.
func TestFromDense2D_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, sparse.ErrEmptyDense},
		{"EmptyCols", [][]int{{}}, sparse.ErrEmptyDense},
		{"Ragged", [][]int{{1, 2}, {3}}, sparse.ErrRagged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.FromDense2D(tc.grid, 0)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromDense2D(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestFromDense2D_StoresOnlyNonDefault verifies sparse ingestion.
func TestFromDense2D_StoresOnlyNonDefault(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{2, 0, 0},
	}
	m, err := sparse.FromDense2D(grid, 0)
	require.NoError(t, err)
	require.Equal(t, 2, m.Dims())
	require.Equal(t, 2, m.Len())
	require.Equal(t, 1, m.Get(0, 1))
	require.Equal(t, 2, m.Get(1, 0))
	require.Equal(t, 0, m.Get(1, 2))
}

// TestFromDense2D_NonZeroDefault: cells equal to the default vanish, even
// when the default is not the zero value.
func TestFromDense2D_NonZeroDefault(t *testing.T) {
	grid := [][]int{
		{-1, 4},
		{-1, -1},
	}
	m, err := sparse.FromDense2D(grid, -1)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	require.Equal(t, 4, m.Get(0, 1))
	require.Equal(t, -1, m.Get(1, 1))
}

//----------------------------------------------------------------------------//
// ToDense2D
//----------------------------------------------------------------------------//

// TestToDense2D_Window materializes a window with defaults filled in.
func TestToDense2D_Window(t *testing.T) {
	m := sparse.New[int](2, 0)
	m.Set(5, 1, 1)
	m.Set(9, 2, 3)

	out, err := sparse.ToDense2D(m, 1, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{
		{5, 0, 0},
		{0, 0, 9},
	}, out)
}

// TestToDense2D_Errors covers dimensionality and window validation.
func TestToDense2D_Errors(t *testing.T) {
	m3 := sparse.New[int](3, 0)
	_, err := sparse.ToDense2D(m3, 0, 0, 1, 1)
	require.ErrorIs(t, err, sparse.ErrDimensionality)

	m := sparse.New[int](2, 0)
	for _, w := range [][4]int{{-1, 0, 1, 1}, {0, -1, 1, 1}, {0, 0, 0, 1}, {0, 0, 1, 0}} {
		_, err = sparse.ToDense2D(m, w[0], w[1], w[2], w[3])
		require.ErrorIs(t, err, sparse.ErrWindow, "window %v", w)
	}
}

// TestDense_RoundTrip: dense → sparse → dense reproduces the input.
func TestDense_RoundTrip(t *testing.T) {
	grid := [][]int{
		{0, 3, 0, 0},
		{0, 0, 0, 7},
		{1, 0, 0, 0},
	}
	m, err := sparse.FromDense2D(grid, 0)
	require.NoError(t, err)

	back, err := sparse.ToDense2D(m, 0, 0, 3, 4)
	require.NoError(t, err)
	require.Equal(t, grid, back)
}
