package complexnum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvqubit/complexnum"
)

// TestComplex_String covers every branch of the display policy.
func TestComplex_String(t *testing.T) {
	tests := []struct {
		in   complexnum.Complex
		want string
	}{
		{complexnum.New(1, 0), "1"},
		{complexnum.New(-0.5, 0), "-0.5"},
		{complexnum.New(0, 1), "i"},
		{complexnum.New(0, -1), "-i"},
		{complexnum.New(0, 2.5), "2.5i"},
		{complexnum.New(1, 1), "1+i"},
		{complexnum.New(1, -1), "1-i"},
		{complexnum.New(0.5, 0.25), "0.5+0.25i"},
		{complexnum.New(0.5, -0.25), "0.5-0.25i"},
		{complexnum.New(1/math.Sqrt2, 0), "0.7071"},
		{complexnum.New(-1/math.Sqrt2, 1/math.Sqrt2), "-0.7071+0.7071i"},
		{complexnum.New(0.123456, 0.00001), "0.1235"},
		{complexnum.New(-0.00001, 0), "0"},
		{complexnum.New(1e-17, 1), "i"},
		{complexnum.New(1e-6, 0.5), "0.5i"},
		{complexnum.New(-0.00004, -0.5), "-0.5i"},
		{complexnum.New(0.0002, 0.5), "0.0002+0.5i"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.String())
		})
	}
}

// TestScalar_StringAndFormat checks Scalar rendering and the Format helper.
func TestScalar_StringAndFormat(t *testing.T) {
	assert.Equal(t, "0.7071", complexnum.Scalar(math.Sqrt2/2).String())
	assert.Equal(t, "-3", complexnum.Scalar(-3).String())
	assert.Equal(t, "0", complexnum.Scalar(math.Copysign(0, -1)).String())
	assert.Equal(t, "-i", complexnum.Format(complexnum.New(0, -1)))
	assert.Equal(t, "2", complexnum.Format(complexnum.Scalar(2)))
	assert.Equal(t, "0", complexnum.Format(nil))
}
