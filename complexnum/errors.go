// SPDX-License-Identifier: MIT

package complexnum

import "errors"

var (
	// ErrDimensionMismatch indicates a ragged matrix or a vector whose length
	// differs from the number of matrix columns.
	ErrDimensionMismatch = errors.New("complexnum: dimension mismatch")

	// ErrNilNumber indicates a nil Number where a value was required.
	ErrNilNumber = errors.New("complexnum: nil number")
)
