// SPDX-License-Identifier: MIT

package qubit

import "errors"

// Sentinel errors returned by Register operations. Each is wrapped with the
// failing operation's name; match with errors.Is.
var (
	// ErrInvalidState indicates a nil, empty, zero-weight or mixed-width
	// superposition, or an operation whose result cancels to the zero vector.
	ErrInvalidState = errors.New("qubit: invalid state")

	// ErrInvalidSelector indicates a bit index or range outside the register.
	ErrInvalidSelector = errors.New("qubit: invalid selector")

	// ErrOverlap indicates intersecting source and destination ranges in Operate.
	ErrOverlap = errors.New("qubit: source and destination ranges overlap")

	// ErrInvalidMatrix indicates a gate that is nil, not 2×2, or holds
	// non-finite entries.
	ErrInvalidMatrix = errors.New("qubit: invalid gate matrix")

	// ErrInvalidFunction indicates a nil transform function.
	ErrInvalidFunction = errors.New("qubit: invalid transform function")

	// ErrWidth indicates a tensor product wider than 64 bits.
	ErrWidth = errors.New("qubit: register too wide")
)
