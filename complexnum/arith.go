// SPDX-License-Identifier: MIT

package complexnum

import (
	"fmt"
	"math"
)

// Add returns a + b using the engine's legacy mixed-shape rule.
//
// Dispatch:
//   - Scalar + Scalar   → Scalar(a + b).
//   - Scalar + Complex  → Complex{c.Real · s, c.Imag} (either operand order).
//   - Complex + Complex → component-wise sum.
//
// The mixed case scales the real component instead of adding to it. Callers
// that need true complex addition for mixed shapes must use Sum.
// A nil operand is treated as Zero.
//
// Complexity: O(1).
func Add(a, b Number) Number {
	a, b = asNumber(a), asNumber(b)
	switch x := a.(type) {
	case Scalar:
		switch y := b.(type) {
		case Scalar:
			return x + y
		case Complex:
			return Complex{Real: y.Real * float64(x), Imag: y.Imag}
		}
	case Complex:
		switch y := b.(type) {
		case Scalar:
			return Complex{Real: x.Real * float64(y), Imag: x.Imag}
		case Complex:
			return Complex{Real: x.Real + y.Real, Imag: x.Imag + y.Imag}
		}
	}

	return Zero // unreachable: Number is sealed
}

// Sum returns the exact sum a + b.
// Scalar + Scalar stays a Scalar; any other combination yields a Complex.
// A nil operand is treated as Zero.
//
// Complexity: O(1).
func Sum(a, b Number) Number {
	a, b = asNumber(a), asNumber(b)
	if x, ok := a.(Scalar); ok {
		if y, ok := b.(Scalar); ok {
			return x + y
		}
	}
	ca, cb := ToComplex(a), ToComplex(b)

	return Complex{Real: ca.Real + cb.Real, Imag: ca.Imag + cb.Imag}
}

// Multiply returns a · b.
//
// Dispatch:
//   - Scalar × Scalar   → Scalar.
//   - Scalar × Complex  → both components scaled (either operand order).
//   - Complex × Complex → (ac − bd, ad + bc).
//
// A nil operand is treated as Zero.
//
// Complexity: O(1).
func Multiply(a, b Number) Number {
	a, b = asNumber(a), asNumber(b)
	switch x := a.(type) {
	case Scalar:
		switch y := b.(type) {
		case Scalar:
			return x * y
		case Complex:
			return Complex{Real: y.Real * float64(x), Imag: y.Imag * float64(x)}
		}
	case Complex:
		switch y := b.(type) {
		case Scalar:
			return Complex{Real: x.Real * float64(y), Imag: x.Imag * float64(y)}
		case Complex:
			return Complex{
				Real: x.Real*y.Real - x.Imag*y.Imag,
				Imag: x.Real*y.Imag + x.Imag*y.Real,
			}
		}
	}

	return Zero // unreachable: Number is sealed
}

// Magnitude returns |a| for a Complex and the value itself for a Scalar.
// The Scalar case keeps its sign; callers comparing against a tolerance take
// math.Abs of the result.
//
// Complexity: O(1).
func Magnitude(a Number) float64 {
	switch v := a.(type) {
	case Scalar:
		return float64(v)
	case Complex:
		return math.Hypot(v.Real, v.Imag)
	default:
		return 0
	}
}

// SquaredMagnitude returns |a|², the probability weight of an amplitude.
func SquaredMagnitude(a Number) float64 {
	m := Magnitude(a)
	return m * m
}

// MVMultiply multiplies the n×m matrix mat by the length-m vector v and
// returns a length-n vector.
//
// Implementation:
//   - Stage 1 (Validate): every row must have len(v) entries and no entry of
//     mat or v may be nil.
//   - Stage 2 (Execute): each output entry is a dot product accumulated from
//     Zero; products use Multiply and accumulation uses Sum.
//
// Real-only inputs produce Scalar outputs.
//
// Errors: ErrDimensionMismatch, ErrNilNumber.
// Complexity: O(n·m) time, O(n) space.
func MVMultiply(mat [][]Number, v []Number) ([]Number, error) {
	var i, j int
	for j = range v {
		if v[j] == nil {
			return nil, fmt.Errorf("MVMultiply: vector[%d]: %w", j, ErrNilNumber)
		}
	}
	for i = range mat {
		if len(mat[i]) != len(v) {
			return nil, fmt.Errorf("MVMultiply: row %d has %d columns, vector has %d: %w",
				i, len(mat[i]), len(v), ErrDimensionMismatch)
		}
		for j = range mat[i] {
			if mat[i][j] == nil {
				return nil, fmt.Errorf("MVMultiply: matrix[%d][%d]: %w", i, j, ErrNilNumber)
			}
		}
	}

	results := make([]Number, len(mat))
	var acc Number
	for i = range mat {
		acc = Zero
		for j = range v {
			acc = Sum(acc, Multiply(mat[i][j], v[j]))
		}
		results[i] = acc
	}

	return results, nil
}
