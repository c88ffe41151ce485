// SPDX-License-Identifier: MIT

package qubit_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvqubit/qubit"
)

// TestMeasure_DeterministicBasis: |0> always measures 0 and stays put.
func TestMeasure_DeterministicBasis(t *testing.T) {
	r := mustKet(t, "|0>")
	for i := 0; i < 50; i++ {
		m, err := r.Measure(qubit.All())
		require.NoError(t, err)
		assert.Equal(t, uint64(0), m.Value)
		assert.Same(t, r, m.Register)
		assert.Equal(t, "|0>", r.String())
	}
}

// TestMeasure_EqualSuperposition checks the outcome frequency of |0>+|1>
// over fresh registers against a 3σ binomial bound.
func TestMeasure_EqualSuperposition(t *testing.T) {
	const trials = 1000
	src := rand.NewPCG(seedDet, 7)

	var zeros int
	for i := 0; i < trials; i++ {
		r, err := qubit.FromKet("|0>+|1>", qubit.WithSource(src))
		require.NoError(t, err)
		m, err := r.Measure(qubit.All())
		require.NoError(t, err)
		require.LessOrEqual(t, m.Value, uint64(1))
		if m.Value == 0 {
			zeros++
		}
	}

	bound := distuv.Binomial{N: trials, P: 0.5}
	assert.LessOrEqual(t, math.Abs(float64(zeros)-bound.Mean()), 3*bound.StdDev(), "zeros=%d", zeros)
}

// TestMeasure_Collapse: measuring one half of a Bell pair fixes the other.
func TestMeasure_Collapse(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		r, err := qubit.FromKet("|00>+|11>", qubit.WithSeed(seed))
		require.NoError(t, err)

		first, err := r.Measure(qubit.Bit(0))
		require.NoError(t, err)
		require.Equal(t, 1, r.Len())
		requireNormalized(t, r)

		second, err := r.Measure(qubit.Bit(1))
		require.NoError(t, err)
		assert.Equal(t, first.Value, second.Value, "seed %d", seed)
	}
}

// TestMeasure_PositionalWeight accumulates bits by selector position, not
// absolute index.
func TestMeasure_PositionalWeight(t *testing.T) {
	r := mustKet(t, "|10>")
	m, err := r.Measure(qubit.Bit(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), m.Value)
	assert.Equal(t, "1", m.String())

	m, err = r.Measure(qubit.Bits(1, 0))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), m.Value)

	m, err = r.Measure(qubit.Bits())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), m.Value)
	assert.Equal(t, "|10>", r.String())
}

// TestMeasure_PartialKeepsCoherence: measuring bit 0 of (|0>+|1>)⊗(|0>-|1>)
// leaves the other qubit's phase intact.
func TestMeasure_PartialKeepsCoherence(t *testing.T) {
	r := mustKet(t, "|00>-|01>+|10>-|11>")
	m, err := r.Measure(qubit.Bit(1))
	require.NoError(t, err)
	if m.Value == 0 {
		assert.Equal(t, "0.7071|00> - 0.7071|01>", r.String())
		return
	}
	assert.Equal(t, "0.7071|10> - 0.7071|11>", r.String())
}

// TestMeasure_SeedReproducible: equal seeds give equal outcome sequences.
func TestMeasure_SeedReproducible(t *testing.T) {
	run := func() []uint64 {
		var out []uint64
		r, err := qubit.FromKet("|000>", qubit.WithSeed(99))
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			c := r.Clone()
			require.NoError(t, c.Hadamard(qubit.All()))
			m, err := c.Measure(qubit.All())
			require.NoError(t, err)
			out = append(out, m.Value)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

// TestNormalization_AcrossOperations keeps Σ|a|² = 1 through a mixed program.
func TestNormalization_AcrossOperations(t *testing.T) {
	r := mustKet(t, "|00>+|01>-|10>")
	steps := []func() error{
		func() error { return r.Hadamard(qubit.Bit(0)) },
		func() error { return r.Phase(qubit.Bit(1), 0.3) },
		func() error { return r.Operate(qubit.At(0), qubit.At(1), identity) },
		func() error { return r.Tensor(mustKet(t, "|0>+|1>")) },
		func() error { return r.Y(qubit.Bits(0, 2)) },
		func() error { _, err := r.Measure(qubit.Bit(2)); return err },
		func() error { return r.Hadamard(qubit.All()) },
		func() error { _, err := r.Measure(qubit.All()); return err },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		requireNormalized(t, r)
	}
}
