// SPDX-License-Identifier: MIT

package state

import "errors"

var (
	// ErrInvalidAmplitude indicates a nil, NaN or ±Inf amplitude.
	ErrInvalidAmplitude = errors.New("state: invalid amplitude")

	// ErrInvalidBitLength indicates a bit length outside [1, MaxBitLength].
	ErrInvalidBitLength = errors.New("state: invalid bit length")

	// ErrValueOutOfRange indicates a value that does not fit in the bit length.
	ErrValueOutOfRange = errors.New("state: value does not fit in bit length")

	// ErrBitLengthMismatch indicates a term whose width differs from the
	// members already present.
	ErrBitLengthMismatch = errors.New("state: bit length mismatch")
)
