// SPDX-License-Identifier: MIT

package qubit

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvqubit/ket"
	"github.com/katalvlaran/lvqubit/state"
)

// Register is a qubit register: a normalized superposition over a fixed
// number of bits, plus the random stream used to measure it.
//
// The register exclusively owns its superposition. Operations replace it
// wholesale and are visible through every reference to the register.
type Register struct {
	state     *state.Superposition
	bitLength uint
	rng       *rand.Rand
	streams   uint64 // clones derived so far; stream id for deriveRand
	log       zerolog.Logger
}

// New builds a register over a copy of s.
//
// Implementation:
//   - Stage 1: reject nil, empty and mixed-width states (ErrInvalidState).
//   - Stage 2: clone and normalize, then drop terms with magnitude <=
//     state.Tolerance at unit norm. Small amplitudes are scaled up, not
//     dropped; only a state with no weight at all is ErrInvalidState.
//   - Stage 3: apply options.
//
// Complexity: O(n) for n terms.
func New(s *state.Superposition, opts ...Option) (*Register, error) {
	if s == nil || s.Len() == 0 {
		return nil, fmt.Errorf("New: empty superposition: %w", ErrInvalidState)
	}
	bitLength := s.BitLength()
	var mixed bool
	s.Do(func(b state.BasisState) bool {
		mixed = b.BitLength != bitLength
		return !mixed
	})
	if mixed {
		return nil, fmt.Errorf("New: mixed widths: %w", ErrInvalidState)
	}

	cp := s.Clone()
	if !settle(cp) {
		return nil, fmt.Errorf("New: zero-weight superposition: %w", ErrInvalidState)
	}

	o := newOptions(opts)
	r := &Register{
		state:     cp,
		bitLength: bitLength,
		rng:       rand.New(o.src),
		log:       o.logger.With().Str("component", "qubit").Logger(),
	}
	r.log.Debug().Uint("bits", bitLength).Int("terms", cp.Len()).Msg("register created")

	return r, nil
}

// FromKet parses a ket literal such as "|0>+|1>" and builds a register on it.
func FromKet(literal string, opts ...Option) (*Register, error) {
	s, err := ket.Parse(literal)
	if err != nil {
		return nil, fmt.Errorf("FromKet: %w", err)
	}

	return New(s, opts...)
}

// BitLength returns the register width.
func (r *Register) BitLength() uint {
	return r.bitLength
}

// Len returns the number of basis terms with non-negligible amplitude.
func (r *Register) Len() int {
	return r.state.Len()
}

// Terms returns copies of the basis terms sorted ascending by value.
func (r *Register) Terms() []state.BasisState {
	return r.state.Sorted()
}

// Snapshot returns a deep copy of the current superposition.
func (r *Register) Snapshot() *state.Superposition {
	return r.state.Clone()
}

// Outcome is the probability of observing Value when measuring every bit.
type Outcome struct {
	Value       uint64
	Probability float64
}

// Probabilities returns |a|² per basis value, sorted ascending by value.
// Complexity: O(n log n).
func (r *Register) Probabilities() []Outcome {
	terms := r.state.Sorted()
	out := make([]Outcome, len(terms))
	for i := range terms {
		out[i] = Outcome{Value: terms[i].Value, Probability: terms[i].Probability()}
	}

	return out
}

// Clone returns an independent register over a copy of the state.
//
// The clone measures with its own stream derived from r's; deriving advances
// r's stream by one draw. Clones of a seeded register are reproducible.
func (r *Register) Clone() *Register {
	r.streams++
	return &Register{
		state:     r.state.Clone(),
		bitLength: r.bitLength,
		rng:       deriveRand(r.rng, r.streams),
		log:       r.log,
	}
}

// settle rescales s to unit norm, drops the terms that are negligible at
// that scale and rescales the survivors. It reports false when no weight is
// left to normalize.
func settle(s *state.Superposition) bool {
	s.Normalize().Prune(state.Tolerance)

	return s.Len() > 0 && s.Normalize().IsNormalized()
}

// install settles next and makes it the register state. A result with no
// weight left is ErrInvalidState and leaves r untouched.
func (r *Register) install(op string, next *state.Superposition, bitLength uint) error {
	if !settle(next) {
		return fmt.Errorf("%s: result cancels to the zero vector: %w", op, ErrInvalidState)
	}
	r.state = next
	r.bitLength = bitLength
	r.log.Debug().Str("op", op).Uint("bits", bitLength).Int("terms", next.Len()).Msg("state replaced")

	return nil
}
