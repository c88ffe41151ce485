// SPDX-License-Identifier: MIT

package qubit

import (
	"fmt"
	"slices"
)

type selectorKind uint8

const (
	selectAll selectorKind = iota
	selectOne
	selectMany
)

// Selector names the bits an operation acts on. The zero value selects all
// bits.
type Selector struct {
	kind    selectorKind
	indices []int
}

// All selects every bit, 0..BitLength-1.
func All() Selector {
	return Selector{kind: selectAll}
}

// Bit selects the single bit i.
func Bit(i int) Selector {
	return Selector{kind: selectOne, indices: []int{i}}
}

// Bits selects the given bits. Order is irrelevant: the indices are sorted
// ascending when resolved. Duplicates are kept, so Bits(0, 0) acts twice on
// bit 0. Bits() selects nothing.
func Bits(indices ...int) Selector {
	return Selector{kind: selectMany, indices: slices.Clone(indices)}
}

// resolve turns s into an ascending list of bit indices for a register of
// bitLength bits.
// Complexity: O(k log k) for k selected indices.
func (s Selector) resolve(bitLength uint) ([]uint, error) {
	if s.kind == selectAll {
		out := make([]uint, bitLength)
		for i := range out {
			out[i] = uint(i)
		}
		return out, nil
	}

	out := make([]uint, 0, len(s.indices))
	for _, i := range s.indices {
		if i < 0 || uint(i) >= bitLength {
			return nil, fmt.Errorf("bit %d of %d: %w", i, bitLength, ErrInvalidSelector)
		}
		out = append(out, uint(i))
	}
	slices.Sort(out)

	return out, nil
}

// String renders s for logs and traces.
func (s Selector) String() string {
	switch s.kind {
	case selectOne:
		return fmt.Sprintf("bit %d", s.indices[0])
	case selectMany:
		return fmt.Sprintf("bits %v", s.indices)
	default:
		return "all"
	}
}

type rangeKind uint8

const (
	rangeFull rangeKind = iota
	rangeSpan
)

// Range names a contiguous inclusive interval of bits. The zero value covers
// the whole register.
type Range struct {
	kind   rangeKind
	lo, hi int
}

// FullRange covers bits 0..BitLength-1.
func FullRange() Range {
	return Range{kind: rangeFull}
}

// At covers the single bit i.
func At(i int) Range {
	return Range{kind: rangeSpan, lo: i, hi: i}
}

// Span covers bits a..b inclusive; the bounds may be given in either order.
func Span(a, b int) Range {
	if a > b {
		a, b = b, a
	}
	return Range{kind: rangeSpan, lo: a, hi: b}
}

// resolve returns the inclusive bounds of r in a register of bitLength bits.
func (r Range) resolve(bitLength uint) (lo, hi uint, err error) {
	if r.kind == rangeFull {
		return 0, bitLength - 1, nil
	}
	if r.lo < 0 || uint(r.hi) >= bitLength {
		return 0, 0, fmt.Errorf("range [%d, %d] of %d bits: %w", r.lo, r.hi, bitLength, ErrInvalidSelector)
	}

	return uint(r.lo), uint(r.hi), nil
}

// String renders r for logs and traces.
func (r Range) String() string {
	if r.kind == rangeFull {
		return "all"
	}
	return fmt.Sprintf("[%d, %d]", r.lo, r.hi)
}
