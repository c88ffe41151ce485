// SPDX-License-Identifier: MIT

package qubit

import (
	"fmt"

	"github.com/katalvlaran/lvqubit/state"
)

// TransformFunc maps the integer read from a source range to the integer
// XORed into a destination range. Bits of the result beyond the destination
// width are discarded.
type TransformFunc func(x uint64) uint64

// Operate applies a classical function across the superposition.
//
// For every basis term with value v:
//
//	x  = bits src of v, shifted down to bit 0
//	v' = v XOR ((fn(x) << dst.lo) & dstMask)
//
// and the amplitude is carried over unchanged. Terms that land on the same
// v' combine by amplitude addition; the result is renormalized.
//
// Errors: ErrInvalidFunction (nil fn), ErrInvalidSelector (range outside the
// register), ErrOverlap (src and dst intersect).
// Complexity: O(n) for n terms.
func (r *Register) Operate(src, dst Range, fn TransformFunc) error {
	const op = "Operate"
	if fn == nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidFunction)
	}
	srcLo, srcHi, err := src.resolve(r.bitLength)
	if err != nil {
		return fmt.Errorf("%s: src %w", op, err)
	}
	dstLo, dstHi, err := dst.resolve(r.bitLength)
	if err != nil {
		return fmt.Errorf("%s: dst %w", op, err)
	}
	if srcHi >= dstLo && dstHi >= srcLo {
		return fmt.Errorf("%s: src %s, dst %s: %w", op, src, dst, ErrOverlap)
	}

	srcMask := widthMask(srcHi-srcLo+1) << srcLo
	dstMask := widthMask(dstHi-dstLo+1) << dstLo
	next := state.Empty()
	r.state.Do(func(b state.BasisState) bool {
		x := (b.Value & srcMask) >> srcLo
		y := (fn(x) << dstLo) & dstMask
		next.Insert(state.BasisState{Amplitude: b.Amplitude, Value: b.Value ^ y, BitLength: b.BitLength})
		return true
	})

	return r.install(op, next, r.bitLength)
}

// widthMask returns n low bits set; n is in [1, 64].
func widthMask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}
