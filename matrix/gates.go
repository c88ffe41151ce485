// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/lvqubit/complexnum"
)

// Every constructor returns a fresh matrix so callers may mutate the result.
// Real entries are stored as complexnum.Scalar to keep real arithmetic real.

// PauliX returns the bit-flip gate [[0,1],[1,0]].
func PauliX() *Dense {
	return mustFromRows([][]complexnum.Number{
		{complexnum.Scalar(0), complexnum.Scalar(1)},
		{complexnum.Scalar(1), complexnum.Scalar(0)},
	})
}

// PauliY returns [[0,-i],[i,0]].
func PauliY() *Dense {
	return mustFromRows([][]complexnum.Number{
		{complexnum.Scalar(0), complexnum.New(0, -1)},
		{complexnum.New(0, 1), complexnum.Scalar(0)},
	})
}

// PauliZ returns the phase-flip gate [[1,0],[0,-1]].
func PauliZ() *Dense {
	return mustFromRows([][]complexnum.Number{
		{complexnum.Scalar(1), complexnum.Scalar(0)},
		{complexnum.Scalar(0), complexnum.Scalar(-1)},
	})
}

// Hadamard returns [[s,s],[s,-s]] with s = 1/√2.
func Hadamard() *Dense {
	s := complexnum.Scalar(math.Sqrt2 / 2)
	return mustFromRows([][]complexnum.Number{
		{s, s},
		{s, -s},
	})
}

// Phase returns [[1,0],[0,e^{iθ}]]. Phase(π) equals PauliZ up to rounding.
func Phase(theta float64) *Dense {
	sin, cos := math.Sincos(theta)
	return mustFromRows([][]complexnum.Number{
		{complexnum.Scalar(1), complexnum.Scalar(0)},
		{complexnum.Scalar(0), complexnum.New(cos, sin)},
	})
}
