// SPDX-License-Identifier: MIT

package circuit

import "errors"

var (
	// ErrUnknownOp indicates a step whose op is not supported.
	ErrUnknownOp = errors.New("circuit: unknown op")

	// ErrUnknownFunc indicates an operate step naming an unregistered transform.
	ErrUnknownFunc = errors.New("circuit: unknown transform")

	// ErrBadStep indicates a step with missing or malformed fields.
	ErrBadStep = errors.New("circuit: malformed step")

	// ErrNoInitial indicates a program without an initial ket.
	ErrNoInitial = errors.New("circuit: missing initial state")
)
