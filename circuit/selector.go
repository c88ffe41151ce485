// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvqubit/qubit"
)

// BitList is the bits field of a step: absent, one index, or a list.
type BitList struct {
	set     bool
	single  bool
	indices []int
}

// UnmarshalYAML accepts an integer or a sequence of integers.
func (b *BitList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var i int
		if err := node.Decode(&i); err != nil {
			return fmt.Errorf("bits at line %d: %w", node.Line, ErrBadStep)
		}
		*b = BitList{set: true, single: true, indices: []int{i}}
	case yaml.SequenceNode:
		var list []int
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("bits at line %d: %w", node.Line, ErrBadStep)
		}
		*b = BitList{set: true, indices: list}
	default:
		return fmt.Errorf("bits at line %d: want integer or list: %w", node.Line, ErrBadStep)
	}

	return nil
}

// Selector converts the field into a qubit.Selector.
func (b BitList) Selector() qubit.Selector {
	switch {
	case !b.set:
		return qubit.All()
	case b.single:
		return qubit.Bit(b.indices[0])
	default:
		return qubit.Bits(b.indices...)
	}
}

// RangeSpec is a src or dst field: absent, one index, or [a, b].
type RangeSpec struct {
	set    bool
	lo, hi int
}

// UnmarshalYAML accepts an integer or a two-element sequence.
func (r *RangeSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var i int
		if err := node.Decode(&i); err != nil {
			return fmt.Errorf("range at line %d: %w", node.Line, ErrBadStep)
		}
		*r = RangeSpec{set: true, lo: i, hi: i}
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil || len(pair) != 2 {
			return fmt.Errorf("range at line %d: want [start, end]: %w", node.Line, ErrBadStep)
		}
		*r = RangeSpec{set: true, lo: pair[0], hi: pair[1]}
	default:
		return fmt.Errorf("range at line %d: want integer or [start, end]: %w", node.Line, ErrBadStep)
	}

	return nil
}

// Range converts the field into a qubit.Range.
func (r RangeSpec) Range() qubit.Range {
	if !r.set {
		return qubit.FullRange()
	}
	return qubit.Span(r.lo, r.hi)
}
