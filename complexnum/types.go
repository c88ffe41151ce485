// SPDX-License-Identifier: MIT

package complexnum

import "math"

// Number is either a Scalar or a Complex. The interface is sealed: only the
// two types of this package implement it, so type switches over Number are
// exhaustive.
type Number interface {
	isNumber()
}

// Scalar is a plain real number. It takes part in arithmetic with Complex
// values without being wrapped first.
type Scalar float64

// Complex is a complex number Real + Imag·i.
type Complex struct {
	Real float64 // real component
	Imag float64 // imaginary component
}

func (Scalar) isNumber()  {}
func (Complex) isNumber() {}

// Compile-time assertions for the sealed interface.
var (
	_ Number = Scalar(0)
	_ Number = Complex{}
)

// Zero is the additive identity used to seed accumulators.
const Zero = Scalar(0)

// New returns the complex number re + im·i.
func New(re, im float64) Complex {
	return Complex{Real: re, Imag: im}
}

// Real returns x as a Scalar.
func Real(x float64) Scalar {
	return Scalar(x)
}

// FromComplex128 converts a builtin complex128 value.
func FromComplex128(z complex128) Complex {
	return Complex{Real: real(z), Imag: imag(z)}
}

// Complex128 converts c into the builtin complex128 type.
func (c Complex) Complex128() complex128 {
	return complex(c.Real, c.Imag)
}

// Conj returns the complex conjugate of c.
func (c Complex) Conj() Complex {
	return Complex{Real: c.Real, Imag: -c.Imag}
}

// IsZero reports whether both components are exactly zero.
func (c Complex) IsZero() bool {
	return c.Real == 0 && c.Imag == 0
}

// ToComplex widens n into a Complex. A nil Number becomes 0.
// Complexity: O(1).
func ToComplex(n Number) Complex {
	switch v := n.(type) {
	case Scalar:
		return Complex{Real: float64(v)}
	case Complex:
		return v
	default:
		return Complex{}
	}
}

// Conj returns the conjugate of n, preserving its shape: a Scalar is its own
// conjugate.
func Conj(n Number) Number {
	switch v := n.(type) {
	case Complex:
		return v.Conj()
	default:
		return asNumber(n)
	}
}

// IsFinite reports whether n is non-nil and has no NaN or ±Inf component.
func IsFinite(n Number) bool {
	switch v := n.(type) {
	case Scalar:
		return finite(float64(v))
	case Complex:
		return finite(v.Real) && finite(v.Imag)
	default:
		return false
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// asNumber maps a nil Number to Zero so that the arithmetic below never has to
// special-case an absent operand.
func asNumber(n Number) Number {
	if n == nil {
		return Zero
	}
	return n
}
