// SPDX-License-Identifier: MIT

// Package qubit simulates a register of qubits over a sparse superposition.
//
// A Register wraps one state.Superposition together with its bit width and
// exposes the operations of the engine:
//
//   - Operate:       XOR a classical function of one bit range into another;
//   - OperateMatrix: apply a 2×2 gate to each selected bit in turn;
//   - X, Y, Z, Hadamard, Phase: built-in gates on top of OperateMatrix;
//   - Tensor:        compose two registers (receiver bits become high-order);
//   - Measure:       sample selected bits and collapse the state.
//
// Every operation builds a fresh superposition, normalizes it, prunes terms
// whose magnitude at unit norm is not above state.Tolerance, normalizes again
// and only then installs the result. On error the register is left exactly
// as it was.
//
// Bit 0 is the least significant bit. Selectors name bits (All, Bit, Bits);
// ranges name contiguous inclusive intervals (FullRange, At, Span). The zero
// Selector is All and the zero Range is FullRange.
//
// Randomness:
//
//	Measurement draws thresholds from the register's own math/rand/v2 stream.
//	Use WithSeed or WithSource for reproducible runs; the default stream is
//	seeded from runtime entropy. Clone derives an independent stream.
//
// Concurrency:
//
//	A Register is not safe for concurrent use. Every operation mutates the
//	register in place; callers sharing one across goroutines must lock.
//
// Example:
//
//	r, _ := qubit.FromKet("|00>", qubit.WithSeed(7))
//	_ = r.Hadamard(qubit.Bit(0))
//	_ = r.Operate(qubit.At(0), qubit.At(1), func(x uint64) uint64 { return x })
//	fmt.Println(r) // 0.7071|00> + 0.7071|11>
package qubit
