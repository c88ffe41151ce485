// SPDX-License-Identifier: MIT

// Package ket parses ket-notation literals into basis states and
// superpositions.
//
// Grammar (blanks around terms are ignored):
//
//	superposition := term { ("+" | "-") term }
//	term          := ["-"] [coefficient] "|" digit { digit } ">"
//	coefficient   := unsigned decimal, e.g. 0.7071
//	digit         := "0" | "1"
//
// A term without a coefficient carries amplitude +1 or -1, so the printed
// form of a register with real amplitudes parses back. The leftmost digit is
// the most significant bit. Repeated terms combine by amplitude addition, so
// "|0>+|0>" yields 2|0>. Parse does not normalize: that is the register's job.
//
//	s, err := ket.Parse("|01>-|10>")
//	// s: {|01>, -|10>}
package ket
