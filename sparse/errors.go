// SPDX-License-Identifier: MIT

package sparse

import "errors"

// Sentinel errors for the dense adapters. Core container operations are
// total over their input domain and never return errors; adapter inputs
// are caller data and are validated with sentinels instead.
var (
	// ErrEmptyDense indicates a dense input with no rows or no columns.
	ErrEmptyDense = errors.New("sparse: dense input must have at least one row and one column")

	// ErrRagged indicates dense rows of differing lengths.
	ErrRagged = errors.New("sparse: all dense rows must have the same length")

	// ErrDimensionality indicates a matrix whose dimensionality does not
	// fit the requested adapter (the 2-D adapters require Dims() == 2).
	ErrDimensionality = errors.New("sparse: matrix dimensionality does not match the requested operation")

	// ErrWindow indicates a dense window with a negative origin or a
	// non-positive extent.
	ErrWindow = errors.New("sparse: window origin must be non-negative and extent positive")
)
