// SPDX-License-Identifier: MIT

package ket

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvqubit/complexnum"
	"github.com/katalvlaran/lvqubit/state"
)

const (
	ketOpen  = "|"
	ketClose = ">"
)

// ParseTerm parses a single signed ket such as "|101>", "-|10>" or
// "0.5|1>".
//
// Implementation:
//   - Stage 1: trim blanks, consume an optional leading "-" and an optional
//     real coefficient such as "0.7071" (ErrSyntax when malformed).
//   - Stage 2: require the "|" prefix and ">" suffix (ErrSyntax).
//   - Stage 3: accumulate digits MSB first (ErrDigit, ErrWidth).
//
// Complexity: O(len(s)).
func ParseTerm(s string) (state.BasisState, error) {
	body := strings.TrimSpace(s)
	if body == "" {
		return state.BasisState{}, fmt.Errorf("ParseTerm(%q): %w", s, ErrEmpty)
	}

	amp := complexnum.Scalar(1)
	if strings.HasPrefix(body, "-") {
		amp = -1
		body = strings.TrimSpace(body[1:])
	}
	if idx := strings.Index(body, ketOpen); idx > 0 {
		coef, err := strconv.ParseFloat(strings.TrimSpace(body[:idx]), 64)
		if err != nil || math.IsNaN(coef) || math.IsInf(coef, 0) {
			return state.BasisState{}, fmt.Errorf("ParseTerm(%q): coefficient %q: %w", s, body[:idx], ErrSyntax)
		}
		amp *= complexnum.Scalar(coef)
		body = body[idx:]
	}
	if !strings.HasPrefix(body, ketOpen) || !strings.HasSuffix(body, ketClose) || len(body) < len(ketOpen)+len(ketClose) {
		return state.BasisState{}, fmt.Errorf("ParseTerm(%q): %w", s, ErrSyntax)
	}

	digits := body[len(ketOpen) : len(body)-len(ketClose)]
	if len(digits) == 0 || len(digits) > state.MaxBitLength {
		return state.BasisState{}, fmt.Errorf("ParseTerm(%q): %d digits: %w", s, len(digits), ErrWidth)
	}

	var value uint64
	for i := 0; i < len(digits); i++ {
		switch digits[i] {
		case '0':
			value <<= 1
		case '1':
			value = value<<1 | 1
		default:
			return state.BasisState{}, fmt.Errorf("ParseTerm(%q): %q at %d: %w", s, digits[i], i, ErrDigit)
		}
	}

	return state.NewBasisState(amp, value, uint(len(digits)))
}

// Parse parses a signed sum of kets such as "|0>+|1>" or "|01>-|10>".
//
// Every "-" is rewritten as "+-" and the input is split on "+". The empty
// piece produced by a leading sign is skipped; any other empty piece is a
// syntax error ("|0>++|1>").
//
// Complexity: O(len(s)).
func Parse(s string) (*state.Superposition, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrEmpty)
	}

	pieces := strings.Split(strings.ReplaceAll(s, "-", "+-"), "+")
	sup := state.Empty()
	for i, piece := range pieces {
		if strings.TrimSpace(piece) == "" {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("Parse(%q): empty term %d: %w", s, i, ErrSyntax)
		}

		b, err := ParseTerm(piece)
		if err != nil {
			return nil, fmt.Errorf("Parse: %w", err)
		}
		if err = sup.Add(b); err != nil {
			if errors.Is(err, state.ErrBitLengthMismatch) {
				return nil, fmt.Errorf("Parse(%q): %w", s, ErrMixedWidth)
			}
			return nil, fmt.Errorf("Parse(%q): %w", s, err)
		}
	}
	if sup.Len() == 0 {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrEmpty)
	}

	return sup, nil
}

// MustParse is like Parse but panics on error.
// Intended for literals in tests and examples.
func MustParse(s string) *state.Superposition {
	sup, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sup
}
