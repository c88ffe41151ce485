// SPDX-License-Identifier: MIT

package complexnum

import (
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// DisplayPrecision is the number of decimal places kept by String.
const DisplayPrecision = 4

// String renders c rounded to DisplayPrecision decimals.
//
// Rules:
//   - a zero (rounded) imaginary part is omitted: "0.5";
//   - unit imaginary coefficients render as "i" / "-i";
//   - when the real part rounds to zero only the imaginary term is shown:
//     "2i", and also "0.5i" for a real part of 1e-6;
//   - otherwise both parts are joined, with "+" before a non-negative
//     imaginary term: "0.5+i", "0.5-0.25i".
func (c Complex) String() string {
	re := round(c.Real)
	im := round(c.Imag)
	if im == 0 {
		return formatFloat(re)
	}

	var s string
	switch im {
	case 1:
		s = "i"
	case -1:
		s = "-i"
	default:
		s = formatFloat(im) + "i"
	}
	if re == 0 {
		return s
	}
	if im < 0 {
		return formatFloat(re) + s
	}

	return formatFloat(re) + "+" + s
}

// String renders s rounded to DisplayPrecision decimals.
func (s Scalar) String() string {
	return formatFloat(round(float64(s)))
}

// Format renders any Number; nil renders as "0".
func Format(n Number) string {
	switch v := n.(type) {
	case Scalar:
		return v.String()
	case Complex:
		return v.String()
	default:
		return "0"
	}
}

// round applies the display precision. scalar.Round already folds -0 into +0.
func round(x float64) float64 {
	return scalar.Round(x, DisplayPrecision)
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
