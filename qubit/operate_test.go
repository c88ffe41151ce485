// SPDX-License-Identifier: MIT

package qubit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqubit/qubit"
)

func identity(x uint64) uint64 { return x }

// TestOperate_Overlap rejects intersecting ranges.
func TestOperate_Overlap(t *testing.T) {
	r := mustKet(t, "|000>")
	err := r.Operate(qubit.Span(0, 1), qubit.Span(1, 2), identity)
	assert.ErrorIs(t, err, qubit.ErrOverlap)

	err = r.Operate(qubit.FullRange(), qubit.At(2), identity)
	assert.ErrorIs(t, err, qubit.ErrOverlap)
	assert.Equal(t, "|000>", r.String())
}

// TestOperate_NilFunction rejects a missing transform.
func TestOperate_NilFunction(t *testing.T) {
	r := mustKet(t, "|00>")
	assert.ErrorIs(t, r.Operate(qubit.At(0), qubit.At(1), nil), qubit.ErrInvalidFunction)
}

// TestOperate_Increment XORs x+1 into the upper bits per term.
func TestOperate_Increment(t *testing.T) {
	r := mustKet(t, "|000>+|001>")
	err := r.Operate(qubit.At(0), qubit.Span(1, 2), func(x uint64) uint64 { return x + 1 })
	require.NoError(t, err)
	assert.Equal(t, "0.7071|010> + 0.7071|101>", r.String())
	requireNormalized(t, r)
}

// TestOperate_MasksResult drops result bits wider than the destination.
func TestOperate_MasksResult(t *testing.T) {
	r := mustKet(t, "|000>")
	require.NoError(t, r.Operate(qubit.At(0), qubit.At(2), func(uint64) uint64 { return 0xff }))
	assert.Equal(t, "|100>", r.String())
}

// TestOperate_XORIsInvolution: applying the same transform twice restores
// the state, amplitudes included.
func TestOperate_XORIsInvolution(t *testing.T) {
	r := mustKet(t, "|0000>-|0011>+|0101>")
	before := r.Snapshot()
	square := func(x uint64) uint64 { return x * x }
	require.NoError(t, r.Operate(qubit.Span(0, 1), qubit.Span(2, 3), square))
	require.NoError(t, r.Operate(qubit.Span(0, 1), qubit.Span(2, 3), square))
	assert.True(t, before.ApproxEqual(r.Snapshot(), 1e-12))
}

// TestOperate_CNOT builds a Bell pair from H and a copy transform.
func TestOperate_CNOT(t *testing.T) {
	r := mustKet(t, "|00>")
	require.NoError(t, r.Hadamard(qubit.Bit(0)))
	require.NoError(t, r.Operate(qubit.At(0), qubit.At(1), identity))
	assert.Equal(t, "0.7071|00> + 0.7071|11>", r.String())
}
