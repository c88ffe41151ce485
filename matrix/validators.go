// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the gate contract checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape → Entries.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvqubit/complexnum"
)

// GateSize is the side length of a single-bit gate matrix.
const GateSize = 2

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols. Assumes m is not nil.
// Complexity: O(1).
func ValidateShape(m Matrix, rows, cols int) error {
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: got %dx%d, want %dx%d", m.Rows(), m.Cols(), rows, cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateEntries ensures every entry is non-nil and finite.
// Complexity: O(r*c).
func ValidateEntries(m Matrix) error {
	var (
		i, j int
		v    complexnum.Number
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateEntries", err)
			}
			if !complexnum.IsFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateEntries(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateGate – Composite: NotNil → 2×2 shape → finite entries.
//
// Errors: ErrNilMatrix, ErrNotGate (wrapping the shape mismatch), ErrNaNInf.
// Complexity: O(1) (the shape is fixed).
func ValidateGate(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateGate", err)
	}
	if err := ValidateShape(m, GateSize, GateSize); err != nil {
		return fmt.Errorf("ValidateGate: %w (%v)", ErrNotGate, err)
	}
	if err := ValidateEntries(m); err != nil {
		return validatorErrorf("ValidateGate", err)
	}

	return nil
}

// IsUnitary reports whether m†m equals the identity within eps, entry by entry.
//
// Implementation:
//   - Stage 1: require a non-nil square matrix.
//   - Stage 2: for each (i, j) accumulate Σ_k conj(m[k][i])·m[k][j] and compare
//     its distance to δij against eps.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n³).
func IsUnitary(m Matrix, eps float64) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, validatorErrorf("IsUnitary", err)
	}
	n := m.Rows()
	if err := ValidateShape(m, n, n); err != nil {
		return false, validatorErrorf("IsUnitary", err)
	}

	var (
		i, j, k int
		acc     complexnum.Number
		a, b    complexnum.Number
		delta   float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			acc = complexnum.Zero
			for k = 0; k < n; k++ {
				a, _ = m.At(k, i) // safe: bounds ensured
				b, _ = m.At(k, j)
				acc = complexnum.Sum(acc, complexnum.Multiply(complexnum.Conj(a), b))
			}
			delta = 0
			if i == j {
				delta = 1
			}
			if math.Abs(complexnum.Magnitude(complexnum.Sum(acc, complexnum.Scalar(-delta)))) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
