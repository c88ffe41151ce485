// SPDX-License-Identifier: MIT

package qubit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvqubit/complexnum"
	"github.com/katalvlaran/lvqubit/matrix"
	"github.com/katalvlaran/lvqubit/state"
)

// OperateMatrix applies the 2×2 gate g to each selected bit in turn, from the
// lowest index up. A k-bit selector applies g k times, not a joint 2^k gate.
//
// Implementation:
//   - Stage 1: validate g (ErrInvalidMatrix) and resolve targets
//     (ErrInvalidSelector).
//   - Stage 2: precompute g·|0⟩ and g·|1⟩, the columns of g.
//   - Stage 3: per bit, expand every term a|v⟩ with bit value b into
//     a·g[0][b]|v with bit cleared⟩ + a·g[1][b]|v with bit set⟩, skipping
//     entries whose magnitude is not above state.Tolerance relative to the
//     largest entry of g. Colliding terms combine; terms left below that
//     same relative bound are dropped and the result is normalized.
//
// The register is updated only when every bit succeeded. A gate that cancels
// the state to the zero vector (possible only when g is not unitary) fails
// with ErrInvalidState.
//
// Complexity: O(k·n) for k target bits and n terms.
func (r *Register) OperateMatrix(targets Selector, g matrix.Matrix) error {
	const op = "OperateMatrix"
	if err := matrix.ValidateGate(g); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidMatrix, err)
	}
	bits, err := targets.resolve(r.bitLength)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	cols, err := gateColumns(g)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidMatrix, err)
	}

	eps := state.Tolerance * gateScale(cols)
	cur := r.state
	for _, bit := range bits {
		cur = applyOneBit(cur, bit, cols, eps).Prune(eps)
		if !settle(cur) {
			break
		}
	}
	r.log.Debug().Str("op", op).Str("targets", targets.String()).Msg("gate applied")

	return r.install(op, cur, r.bitLength)
}

// gateColumns returns g·[1 0]ᵀ and g·[0 1]ᵀ.
func gateColumns(g matrix.Matrix) ([2][]complexnum.Number, error) {
	var cols [2][]complexnum.Number
	rows := make([][]complexnum.Number, matrix.GateSize)
	for i := range rows {
		rows[i] = make([]complexnum.Number, matrix.GateSize)
		for j := range rows[i] {
			v, err := g.At(i, j)
			if err != nil {
				return cols, err
			}
			rows[i][j] = v
		}
	}

	basis := [2][]complexnum.Number{
		{complexnum.Scalar(1), complexnum.Scalar(0)},
		{complexnum.Scalar(0), complexnum.Scalar(1)},
	}
	for b := range basis {
		col, err := complexnum.MVMultiply(rows, basis[b])
		if err != nil {
			return cols, err
		}
		cols[b] = col
	}

	return cols, nil
}

// gateScale returns the largest entry magnitude of the gate columns.
func gateScale(cols [2][]complexnum.Number) float64 {
	var scale float64
	for _, col := range cols {
		for _, entry := range col {
			scale = math.Max(scale, math.Abs(complexnum.Magnitude(entry)))
		}
	}

	return scale
}

// applyOneBit expands every term of cur across bit using the gate columns,
// skipping entries whose magnitude is not above eps.
func applyOneBit(cur *state.Superposition, bit uint, cols [2][]complexnum.Number, eps float64) *state.Superposition {
	mask := uint64(1) << bit
	next := state.Empty()
	cur.Do(func(b state.BasisState) bool {
		cleared := b.Value &^ mask
		col := cols[b.Bit(bit)]
		for k, entry := range col {
			if math.Abs(complexnum.Magnitude(entry)) <= eps {
				continue
			}
			next.Insert(state.BasisState{
				Amplitude: complexnum.ToComplex(complexnum.Multiply(b.Amplitude, entry)),
				Value:     cleared | uint64(k)<<bit,
				BitLength: b.BitLength,
			})
		}
		return true
	})

	return next
}

// X applies the Pauli-X (bit flip) gate to targets.
func (r *Register) X(targets Selector) error {
	return r.OperateMatrix(targets, matrix.PauliX())
}

// Y applies the Pauli-Y gate to targets.
func (r *Register) Y(targets Selector) error {
	return r.OperateMatrix(targets, matrix.PauliY())
}

// Z applies the Pauli-Z (phase flip) gate to targets.
func (r *Register) Z(targets Selector) error {
	return r.OperateMatrix(targets, matrix.PauliZ())
}

// Hadamard applies the Hadamard gate to targets.
func (r *Register) Hadamard(targets Selector) error {
	return r.OperateMatrix(targets, matrix.Hadamard())
}

// Phase applies diag(1, e^{iθ}) to targets.
func (r *Register) Phase(targets Selector, theta float64) error {
	return r.OperateMatrix(targets, matrix.Phase(theta))
}
