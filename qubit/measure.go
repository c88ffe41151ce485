// SPDX-License-Identifier: MIT

package qubit

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvqubit/state"
)

// Measurement pairs an observed value with the register it was taken from.
// Register is the measured register itself, already collapsed.
type Measurement struct {
	Value    uint64
	Register *Register
}

// String returns the observed value in decimal.
func (m Measurement) String() string {
	return strconv.FormatUint(m.Value, 10)
}

// Measure samples the selected bits one at a time and collapses the state.
//
// Implementation, for the i-th selected bit (ascending index order):
//   - Stage 1: draw a threshold t uniformly from [0, 1) and walk the terms in
//     insertion order accumulating |a|²; the first term whose running sum
//     exceeds t fixes the bit value. If rounding keeps the sum at or below t,
//     the last visited term is used.
//   - Stage 2: keep only the terms that agree on that bit and renormalize.
//   - Stage 3: add bit << i to the result. The weight is the selector
//     position i, not the absolute bit index.
//
// Errors: ErrInvalidSelector.
// Complexity: O(k·n) for k selected bits and n terms.
func (r *Register) Measure(targets Selector) (Measurement, error) {
	const op = "Measure"
	bits, err := targets.resolve(r.bitLength)
	if err != nil {
		return Measurement{}, fmt.Errorf("%s: %w", op, err)
	}

	threshold := distuv.Uniform{Min: 0, Max: 1, Src: r.rng}
	cur := r.state
	var value uint64
	for i, bit := range bits {
		chosen := choose(cur, threshold.Rand())
		observed := chosen.Bit(bit)

		next := state.Empty()
		cur.Do(func(b state.BasisState) bool {
			if b.Bit(bit) == observed {
				next.Insert(b.Clone())
			}
			return true
		})
		cur = next.Normalize()
		value += observed << uint(i)
	}

	if err = r.install(op, cur, r.bitLength); err != nil {
		return Measurement{}, err
	}
	r.log.Debug().Str("op", op).Str("targets", targets.String()).Uint64("value", value).Msg("measured")

	return Measurement{Value: value, Register: r}, nil
}

// choose walks s accumulating squared magnitudes and returns the first term
// whose running sum exceeds threshold, or the last term visited.
func choose(s *state.Superposition, threshold float64) state.BasisState {
	var (
		chosen state.BasisState
		sum    float64
	)
	s.Do(func(b state.BasisState) bool {
		chosen = b
		sum += b.Probability()
		return sum <= threshold
	})

	return chosen
}
