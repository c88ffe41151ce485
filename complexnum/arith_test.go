package complexnum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqubit/complexnum"
)

const eps = 1e-12

// TestAdd_Dispatch pins the structural dispatch of Add, including the legacy
// Scalar+Complex rule that scales the real component.
func TestAdd_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		a, b complexnum.Number
		want complexnum.Number
	}{
		{"scalar+scalar", complexnum.Scalar(1.5), complexnum.Scalar(2), complexnum.Scalar(3.5)},
		{"scalar+complex", complexnum.Scalar(2), complexnum.New(3, 4), complexnum.New(6, 4)},
		{"complex+scalar", complexnum.New(3, 4), complexnum.Scalar(2), complexnum.New(6, 4)},
		{"zero seed zeroes real part", complexnum.Zero, complexnum.New(3, 4), complexnum.New(0, 4)},
		{"complex+complex", complexnum.New(1, -1), complexnum.New(2, 3), complexnum.New(3, 2)},
		{"nil treated as zero", nil, complexnum.Scalar(5), complexnum.Scalar(5)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, complexnum.Add(tc.a, tc.b))
		})
	}
}

// TestSum_Exact verifies that Sum performs true addition for every shape pair.
func TestSum_Exact(t *testing.T) {
	assert.Equal(t, complexnum.Scalar(3), complexnum.Sum(complexnum.Scalar(1), complexnum.Scalar(2)))
	assert.Equal(t, complexnum.New(5, 4), complexnum.Sum(complexnum.Scalar(2), complexnum.New(3, 4)))
	assert.Equal(t, complexnum.New(5, 4), complexnum.Sum(complexnum.New(3, 4), complexnum.Scalar(2)))
	assert.Equal(t, complexnum.New(3, 4), complexnum.Sum(complexnum.Zero, complexnum.New(3, 4)))
	assert.Equal(t, complexnum.New(0, 0), complexnum.Sum(complexnum.New(1, 1), complexnum.New(-1, -1)))
}

// TestMultiply_Dispatch covers every operand shape combination.
func TestMultiply_Dispatch(t *testing.T) {
	assert.Equal(t, complexnum.Scalar(6), complexnum.Multiply(complexnum.Scalar(2), complexnum.Scalar(3)))
	assert.Equal(t, complexnum.New(2, -4), complexnum.Multiply(complexnum.Scalar(2), complexnum.New(1, -2)))
	assert.Equal(t, complexnum.New(2, -4), complexnum.Multiply(complexnum.New(1, -2), complexnum.Scalar(2)))
	// (1+2i)(3+4i) = 3 + 4i + 6i - 8 = -5 + 10i
	assert.Equal(t, complexnum.New(-5, 10), complexnum.Multiply(complexnum.New(1, 2), complexnum.New(3, 4)))
	// i·i = -1
	assert.Equal(t, complexnum.New(-1, 0), complexnum.Multiply(complexnum.New(0, 1), complexnum.New(0, 1)))
}

// TestMagnitude checks the Scalar passthrough (sign kept) and the Complex modulus.
func TestMagnitude(t *testing.T) {
	assert.Equal(t, -2.5, complexnum.Magnitude(complexnum.Scalar(-2.5)))
	assert.InDelta(t, 5.0, complexnum.Magnitude(complexnum.New(3, 4)), eps)
	assert.InDelta(t, 25.0, complexnum.SquaredMagnitude(complexnum.New(-3, 4)), eps)
	assert.Equal(t, 0.0, complexnum.Magnitude(nil))
}

// TestMVMultiply_RealMatrix keeps Scalar outputs for an all-real product.
func TestMVMultiply_RealMatrix(t *testing.T) {
	m := [][]complexnum.Number{
		{complexnum.Scalar(0), complexnum.Scalar(1)},
		{complexnum.Scalar(1), complexnum.Scalar(0)},
	}
	v := []complexnum.Number{complexnum.Scalar(1), complexnum.Scalar(0)}

	got, err := complexnum.MVMultiply(m, v)
	require.NoError(t, err)
	assert.Equal(t, []complexnum.Number{complexnum.Scalar(0), complexnum.Scalar(1)}, got)
}

// TestMVMultiply_ComplexMatrix verifies mixed-shape rows keep their real parts.
func TestMVMultiply_ComplexMatrix(t *testing.T) {
	// Phase-like row: [1, e^{iπ/2}] · [0.5, 0.5] = 0.5 + 0.5i
	m := [][]complexnum.Number{
		{complexnum.Scalar(1), complexnum.New(0, 1)},
		{complexnum.New(2, 0), complexnum.Scalar(0)},
	}
	v := []complexnum.Number{complexnum.Scalar(0.5), complexnum.Scalar(0.5)}

	got, err := complexnum.MVMultiply(m, v)
	require.NoError(t, err)
	require.Len(t, got, 2)
	c0 := complexnum.ToComplex(got[0])
	assert.InDelta(t, 0.5, c0.Real, eps)
	assert.InDelta(t, 0.5, c0.Imag, eps)
	c1 := complexnum.ToComplex(got[1])
	assert.InDelta(t, 1.0, c1.Real, eps)
	assert.InDelta(t, 0.0, c1.Imag, eps)
}

// TestMVMultiply_Errors covers ragged rows, short vectors and nil entries.
func TestMVMultiply_Errors(t *testing.T) {
	ragged := [][]complexnum.Number{
		{complexnum.Scalar(1), complexnum.Scalar(2)},
		{complexnum.Scalar(1)},
	}
	_, err := complexnum.MVMultiply(ragged, []complexnum.Number{complexnum.Scalar(1), complexnum.Scalar(1)})
	assert.ErrorIs(t, err, complexnum.ErrDimensionMismatch)

	square := [][]complexnum.Number{{complexnum.Scalar(1), complexnum.Scalar(2)}}
	_, err = complexnum.MVMultiply(square, []complexnum.Number{complexnum.Scalar(1)})
	assert.ErrorIs(t, err, complexnum.ErrDimensionMismatch)

	withNil := [][]complexnum.Number{{nil, complexnum.Scalar(2)}}
	_, err = complexnum.MVMultiply(withNil, []complexnum.Number{complexnum.Scalar(1), complexnum.Scalar(1)})
	assert.ErrorIs(t, err, complexnum.ErrNilNumber)

	_, err = complexnum.MVMultiply(square, []complexnum.Number{complexnum.Scalar(1), nil})
	assert.ErrorIs(t, err, complexnum.ErrNilNumber)
}

// TestConversions exercises the small helpers around the sealed interface.
func TestConversions(t *testing.T) {
	assert.Equal(t, complexnum.New(2, 0), complexnum.ToComplex(complexnum.Scalar(2)))
	assert.Equal(t, complexnum.New(0, 0), complexnum.ToComplex(nil))
	assert.Equal(t, complexnum.New(1, -2), complexnum.Conj(complexnum.New(1, 2)))
	assert.Equal(t, complexnum.Scalar(3), complexnum.Conj(complexnum.Scalar(3)))
	assert.Equal(t, complexnum.New(1, 2), complexnum.FromComplex128(complexnum.New(1, 2).Complex128()))
	assert.True(t, complexnum.New(0, 0).IsZero())

	assert.True(t, complexnum.IsFinite(complexnum.New(1, 2)))
	assert.False(t, complexnum.IsFinite(complexnum.New(math.NaN(), 0)))
	assert.False(t, complexnum.IsFinite(complexnum.Scalar(math.Inf(-1))))
	assert.False(t, complexnum.IsFinite(nil))
}
