// SPDX-License-Identifier: MIT

package qubit

import (
	"fmt"

	"github.com/katalvlaran/lvqubit/complexnum"
	"github.com/katalvlaran/lvqubit/state"
)

// Tensor replaces r with r ⊗ other over BitLength()+other.BitLength() bits.
//
// Every pair (a|u⟩ from r, b|w⟩ from other) contributes ab|(u << m) + w⟩,
// where m is other's width: r's bits become the high-order bits. other is
// not modified; r ⊗ r is allowed.
//
// Errors: ErrInvalidState (nil other), ErrWidth (combined width above 64).
// Complexity: O(n·m) for n and m terms.
func (r *Register) Tensor(other *Register) error {
	const op = "Tensor"
	if other == nil {
		return fmt.Errorf("%s: nil register: %w", op, ErrInvalidState)
	}
	width := r.bitLength + other.bitLength
	if width > state.MaxBitLength {
		return fmt.Errorf("%s: %d+%d bits: %w", op, r.bitLength, other.bitLength, ErrWidth)
	}

	shift := other.bitLength
	next := state.Empty()
	r.state.Do(func(left state.BasisState) bool {
		other.state.Do(func(right state.BasisState) bool {
			next.Insert(state.BasisState{
				Amplitude: complexnum.ToComplex(complexnum.Multiply(left.Amplitude, right.Amplitude)),
				Value:     (left.Value << shift) + right.Value,
				BitLength: width,
			})
			return true
		})
		return true
	})

	return r.install(op, next, width)
}
