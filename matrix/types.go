// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvqubit/complexnum"

// Matrix represents a two-dimensional mutable array of complexnum.Number values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (complexnum.Number, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid and ErrNaNInf for a nil
	// or non-finite value.
	Set(i, j int, v complexnum.Number) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
