// SPDX-License-Identifier: MIT

// Package matrix provides the small dense matrices used as quantum gates.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of complexnum.Number entries with safe
//     accessors (At/Set return errors instead of panicking).
//   - Matrix-vector products (MulVec) delegated to complexnum.MVMultiply, so
//     real-only gates keep producing real (Scalar) amplitudes.
//   - Validators for the gate contract (exactly 2×2, finite entries) and a
//     unitarity check within a tolerance.
//   - Constructors for the standard single-qubit gates: PauliX, PauliY,
//     PauliZ, Hadamard and Phase(θ).
//
// Gate matrices act on the two-dimensional amplitude subspace of one bit:
// column 0 is the image of |0>, column 1 the image of |1>.
//
//	h := matrix.Hadamard()
//	out, _ := h.MulVec([]complexnum.Number{complexnum.Scalar(1), complexnum.Scalar(0)})
//	// out = [0.7071 0.7071]
//
// This is not a general-purpose linear-algebra package: it covers what the
// register engine needs and nothing more.
package matrix
