// SPDX-License-Identifier: MIT

// Package complexnum provides the scalar arithmetic used by the qubit engine.
//
// A value is either a plain real number (Scalar) or a complex number
// (Complex). Both satisfy the sealed Number interface, and every operation
// dispatches on the concrete shapes of its operands:
//
//   - Scalar ⊕ Scalar stays a Scalar (no complex wrapper is allocated).
//   - Any operation involving a Complex yields a Complex.
//
// Operations:
//
//	Add(a, b)          legacy mixed addition (see Add for the Scalar+Complex rule)
//	Sum(a, b)          mathematically exact addition
//	Multiply(a, b)     product, (ac−bd, ad+bc) for two complex operands
//	Magnitude(a)       |a| for Complex, the value itself for Scalar
//	MVMultiply(m, v)   matrix × vector over Numbers
//
// Display follows a fixed textual policy: values are rounded to four decimal
// places, a zero imaginary part is omitted and unit imaginary coefficients are
// rendered as "i" / "-i".
//
//	fmt.Println(complexnum.New(0.5, -1)) // 0.5-i
//	fmt.Println(complexnum.New(0, 2))    // 2i
//
// Values are immutable by convention: every operation returns a new value and
// never mutates its operands.
package complexnum
