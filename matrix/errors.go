// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels wrapped with operation context;
// callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned for ragged row input (rows of differing length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a nil, NaN or ±Inf entry where a finite value is required.
	ErrNaNInf = errors.New("matrix: nil, NaN or Inf entry")

	// ErrNotGate signals a matrix that is not exactly 2×2.
	ErrNotGate = errors.New("matrix: gate must be 2x2")
)
