// SPDX-License-Identifier: MIT

// Package state holds the sparse representation of a superposition.
//
// A BasisState is one term a·|b⟩: a complex amplitude attached to a classical
// bit pattern b of a fixed width. A Superposition is a sparse map from bit
// pattern to BasisState:
//
//	a|01> + b|10>  ⇒  {1: a|01>, 2: b|10>}, BitLength = 2
//
// Invariants:
//
//   - keys are unique; adding a term whose key already exists combines the
//     amplitudes by complex addition instead of overwriting;
//   - every member shares the same BitLength;
//   - after Normalize, Σ|a|² = 1 within Tolerance unless the sum was zero.
//
// Iteration order is insertion order. It is deterministic, which keeps seeded
// measurements reproducible, but it carries no meaning: use Values for a
// sorted view.
//
// A Superposition is not safe for concurrent mutation.
package state
