// SPDX-License-Identifier: MIT

package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvqubit/complexnum"
)

const (
	// Tolerance is the numeric tolerance of the normalization invariant and
	// of the sparsity checks.
	Tolerance = 1e-7

	// MaxBitLength is the widest supported pattern (values are uint64 keys).
	MaxBitLength = 64
)

// BasisState is one term of a superposition: Amplitude·|Value⟩ over BitLength
// bits, bit 0 being the least significant.
//
// The zero value (BitLength == 0) is the absent term: Superposition.Add
// ignores it.
type BasisState struct {
	Amplitude complexnum.Complex
	Value     uint64
	BitLength uint
}

// NewBasisState validates and builds a term.
//
// Implementation:
//   - Stage 1: amplitude must be a non-nil finite Number (ErrInvalidAmplitude).
//   - Stage 2: 1 <= bitLength <= MaxBitLength (ErrInvalidBitLength).
//   - Stage 3: value < 2^bitLength (ErrValueOutOfRange).
//
// A Scalar amplitude is widened to Complex.
// Complexity: O(1).
func NewBasisState(amplitude complexnum.Number, value uint64, bitLength uint) (BasisState, error) {
	if !complexnum.IsFinite(amplitude) {
		return BasisState{}, fmt.Errorf("NewBasisState: %w", ErrInvalidAmplitude)
	}
	if bitLength == 0 || bitLength > MaxBitLength {
		return BasisState{}, fmt.Errorf("NewBasisState: %d: %w", bitLength, ErrInvalidBitLength)
	}
	if bitLength < MaxBitLength && value>>bitLength != 0 {
		return BasisState{}, fmt.Errorf("NewBasisState: %d in %d bits: %w", value, bitLength, ErrValueOutOfRange)
	}

	return BasisState{
		Amplitude: complexnum.ToComplex(amplitude),
		Value:     value,
		BitLength: bitLength,
	}, nil
}

// MustBasisState is like NewBasisState but panics on error.
// Intended for literals in tests and examples.
func MustBasisState(amplitude complexnum.Number, value uint64, bitLength uint) BasisState {
	b, err := NewBasisState(amplitude, value, bitLength)
	if err != nil {
		panic(err)
	}
	return b
}

// IsAbsent reports whether b is the zero (absent) term.
func (b BasisState) IsAbsent() bool {
	return b.BitLength == 0
}

// Clone returns a copy of b with a new amplitude value.
func (b BasisState) Clone() BasisState {
	return BasisState{
		Amplitude: complexnum.New(b.Amplitude.Real, b.Amplitude.Imag),
		Value:     b.Value,
		BitLength: b.BitLength,
	}
}

// Bit returns bit i of the value (0 or 1).
func (b BasisState) Bit(i uint) uint64 {
	return (b.Value >> i) & 1
}

// Probability returns |Amplitude|².
func (b BasisState) Probability() float64 {
	return complexnum.SquaredMagnitude(b.Amplitude)
}

// BitString returns the value in binary, zero-padded to BitLength digits.
func (b BasisState) BitString() string {
	bits := strconv.FormatUint(b.Value, 2)
	if pad := int(b.BitLength) - len(bits); pad > 0 {
		bits = strings.Repeat("0", pad) + bits
	}

	return bits
}

// Ket returns "|bits>".
func (b BasisState) Ket() string {
	return "|" + b.BitString() + ">"
}

// String renders the term as coefficient and ket:
//   - amplitude "1" is elided: "|01>";
//   - amplitude "-1" renders as a bare sign: "-|01>";
//   - an amplitude with both parts is parenthesized: "(0.5+0.5i)|01>";
//   - a zero (rounded) amplitude renders as the empty string.
func (b BasisState) String() string {
	a := b.Amplitude.String()
	switch {
	case a == "0":
		return ""
	case a == "1":
		return b.Ket()
	case a == "-1":
		return "-" + b.Ket()
	case strings.HasSuffix(a, "i") && strings.ContainsAny(a[1:], "+-"):
		return "(" + a + ")" + b.Ket()
	default:
		return a + b.Ket()
	}
}
