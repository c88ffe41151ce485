// Package lvqubit is an in-memory simulator for small qubit registers,
// built on a sparse superposition: only basis states with non-negligible
// amplitude are stored.
//
// 🚀 What is in the box?
//
//	• Complex arithmetic with a real/complex number duality
//	• Basis states and insertion-ordered sparse superpositions
//	• Registers: bit-functional transforms, 2×2 gates (X, Y, Z, H, Phase),
//	  tensor composition and measurement with collapse
//	• Ket-notation parsing ("|0>+|1>", "|01>-|10>")
//	• YAML circuit programs with step traces
//	• MessagePack snapshots of registers
//
// ✨ Guarantees
//
//   - Every register operation leaves Σ|a|² = 1 within 1e-7
//   - Failed operations leave the register untouched
//   - Measurements are reproducible under a fixed seed
//
// Packages, leaves first:
//
//	complexnum/ — Scalar and Complex numbers, Add/Sum/Multiply/Magnitude, MVMultiply
//	matrix/     — dense complex matrices, validators and the standard gates
//	state/      — BasisState and Superposition with the normalization invariant
//	ket/        — ket-notation parser
//	qubit/      — Register: Operate, OperateMatrix, gates, Tensor, Measure
//	circuit/    — YAML programs executed step by step
//	snapshot/   — MessagePack encoding of registers
//	cmd/qsim    — command-line front end
//
// Quick example (Bell pair):
//
//	r, _ := qubit.FromKet("|00>", qubit.WithSeed(1))
//	_ = r.Hadamard(qubit.Bit(0))
//	_ = r.Operate(qubit.At(0), qubit.At(1), func(x uint64) uint64 { return x })
//	fmt.Println(r) // 0.7071|00> + 0.7071|11>
//
//	go install github.com/katalvlaran/lvqubit/cmd/qsim@latest
package lvqubit
