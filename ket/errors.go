// SPDX-License-Identifier: MIT

package ket

import "errors"

var (
	// ErrEmpty indicates an input with no terms at all.
	ErrEmpty = errors.New("ket: empty input")

	// ErrSyntax indicates a term that is not of the form [-]|bits>, or an
	// empty term between two signs.
	ErrSyntax = errors.New("ket: syntax error")

	// ErrDigit indicates a character other than 0 or 1 inside a ket.
	ErrDigit = errors.New("ket: invalid binary digit")

	// ErrWidth indicates a ket with no digits or more than 64 digits.
	ErrWidth = errors.New("ket: invalid width")

	// ErrMixedWidth indicates terms of different widths in one superposition.
	ErrMixedWidth = errors.New("ket: mixed term widths")
)
