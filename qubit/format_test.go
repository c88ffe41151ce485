// SPDX-License-Identifier: MIT

package qubit_test

import (
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqubit/ket"
	"github.com/katalvlaran/lvqubit/qubit"
)

// TestString_RoundTrip: the rendering of a unit-amplitude literal parses
// back to the same signed terms.
func TestString_RoundTrip(t *testing.T) {
	for _, literal := range []string{"|01>-|10>", "|0>+|1>", "-|000>+|101>-|111>", "|1>"} {
		r := mustKet(t, literal)
		parsed, err := ket.Parse(r.String())
		require.NoError(t, err, r.String())
		assert.True(t, parsed.Normalize().ApproxEqual(r.Snapshot(), 1e-4), "%s -> %s", literal, r)
	}
}

// TestString_Rules pins elision, separators and parentheses.
func TestString_Rules(t *testing.T) {
	assert.Equal(t, "|01>", mustKet(t, "|01>").String())
	assert.Equal(t, "-|01>", mustKet(t, "-|01>").String())
	assert.Equal(t, "0.7071|01> - 0.7071|10>", mustKet(t, "|01>-|10>").String())
	assert.Equal(t, "-0.7071|00> + 0.7071|11>", mustKet(t, "|11>-|00>").String())
}

// TestString_Golden renders small circuits against golden files.
func TestString_Golden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	tests := []struct {
		name  string
		ket   string
		apply func(r *qubit.Register) error
	}{
		{"bell", "|00>", func(r *qubit.Register) error {
			if err := r.Hadamard(qubit.Bit(0)); err != nil {
				return err
			}
			return r.Operate(qubit.At(0), qubit.At(1), identity)
		}},
		{"minus", "|0>", func(r *qubit.Register) error {
			if err := r.X(qubit.All()); err != nil {
				return err
			}
			return r.Hadamard(qubit.All())
		}},
		{"phase_quarter", "|0>+|1>", func(r *qubit.Register) error {
			return r.Phase(qubit.Bit(0), math.Pi/2)
		}},
		{"phase_eighth", "|1>", func(r *qubit.Register) error {
			return r.Phase(qubit.Bit(0), math.Pi/4)
		}},
		{"tensor", "|0>+|1>", func(r *qubit.Register) error {
			return r.Tensor(mustKet(t, "|1>"))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustKet(t, tc.ket)
			require.NoError(t, tc.apply(r))
			g.Assert(t, tc.name, []byte(r.String()+"\n"))
		})
	}
}
