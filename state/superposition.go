// SPDX-License-Identifier: MIT

package state

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvqubit/complexnum"
)

// Superposition is a sparse, insertion-ordered map from bit pattern to term.
// The zero value is not usable; construct with New.
type Superposition struct {
	terms map[uint64]BasisState // value → term
	order []uint64              // insertion order of keys in terms
}

// New returns a superposition holding terms, added in order with Add
// semantics: absent terms are skipped and duplicate keys combine.
//
// Errors: ErrBitLengthMismatch when terms disagree on their width.
// Complexity: O(n).
func New(terms ...BasisState) (*Superposition, error) {
	s := &Superposition{terms: make(map[uint64]BasisState, len(terms))}
	for i := range terms {
		if err := s.Add(terms[i]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Empty returns a superposition with no members.
func Empty() *Superposition {
	return &Superposition{terms: make(map[uint64]BasisState)}
}

// Add inserts term, or combines it with an existing member of the same value.
//
// Behavior:
//   - an absent term (zero BasisState) is a no-op;
//   - on collision the stored term is replaced by a new one whose amplitude is
//     the complex sum of both, with the incoming term's BitLength; the key
//     keeps its original insertion position;
//   - a term whose BitLength differs from the current members fails with
//     ErrBitLengthMismatch and leaves s unchanged.
//
// Complexity: O(1) amortized.
func (s *Superposition) Add(term BasisState) error {
	if term.IsAbsent() {
		return nil
	}
	if bl := s.BitLength(); bl != 0 && bl != term.BitLength {
		return fmt.Errorf("Superposition.Add(%s): width %d, members have %d: %w",
			term.Ket(), term.BitLength, bl, ErrBitLengthMismatch)
	}
	s.insert(term)

	return nil
}

// insert is Add without validation, for rebuilds whose widths are known to agree.
func (s *Superposition) insert(term BasisState) {
	prev, ok := s.terms[term.Value]
	if !ok {
		s.terms[term.Value] = term
		s.order = append(s.order, term.Value)
		return
	}
	s.terms[term.Value] = BasisState{
		Amplitude: complexnum.ToComplex(complexnum.Sum(prev.Amplitude, term.Amplitude)),
		Value:     term.Value,
		BitLength: term.BitLength,
	}
}

// Insert adds term without the width check. It exists for register rebuilds
// that derive every term from a consistent source; absent terms are skipped.
func (s *Superposition) Insert(term BasisState) {
	if term.IsAbsent() {
		return
	}
	s.insert(term)
}

// BitLength returns the width shared by every member, or 0 when s is empty.
func (s *Superposition) BitLength() uint {
	if len(s.order) == 0 {
		return 0
	}
	return s.terms[s.order[0]].BitLength
}

// Len returns the number of stored terms.
func (s *Superposition) Len() int {
	return len(s.order)
}

// Get returns the term stored for value.
func (s *Superposition) Get(value uint64) (BasisState, bool) {
	b, ok := s.terms[value]
	return b, ok
}

// Do calls f for every term in insertion order until f returns false.
// f must not mutate s.
func (s *Superposition) Do(f func(b BasisState) bool) {
	for _, v := range s.order {
		if !f(s.terms[v]) {
			return
		}
	}
}

// Terms returns the members in insertion order. The slice is a copy.
func (s *Superposition) Terms() []BasisState {
	out := make([]BasisState, 0, len(s.order))
	for _, v := range s.order {
		out = append(out, s.terms[v])
	}

	return out
}

// Values returns the stored keys sorted ascending.
func (s *Superposition) Values() []uint64 {
	out := slices.Clone(s.order)
	slices.Sort(out)

	return out
}

// Sorted returns the members sorted ascending by value.
func (s *Superposition) Sorted() []BasisState {
	out := s.Terms()
	slices.SortFunc(out, func(a, b BasisState) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		default:
			return 0
		}
	})

	return out
}

// SquaredNorm returns Σ|a|² over all members.
// Complexity: O(n).
func (s *Superposition) SquaredNorm() float64 {
	probs := make([]float64, 0, len(s.order))
	for _, v := range s.order {
		probs = append(probs, s.terms[v].Probability())
	}

	return floats.Sum(probs)
}

// IsNormalized reports whether Σ|a|² is within Tolerance of 1.
func (s *Superposition) IsNormalized() bool {
	return scalar.EqualWithinAbs(s.SquaredNorm(), 1, Tolerance)
}

// Normalize rescales every amplitude by 1/sqrt(Σ|a|²) and returns s.
//
// Any strictly positive, finite sum is rescaled, however small. It is a no-op
// when the sum is already within Tolerance of 1, and when the sum is zero or
// not finite; callers detect those through IsNormalized.
//
// Complexity: O(n).
func (s *Superposition) Normalize() *Superposition {
	sum := s.SquaredNorm()
	if !(sum > 0) || math.IsInf(sum, 0) || scalar.EqualWithinAbs(sum, 1, Tolerance) {
		return s
	}

	factor := complexnum.Scalar(1 / math.Sqrt(sum))
	var t BasisState
	for _, v := range s.order {
		t = s.terms[v]
		t.Amplitude = complexnum.ToComplex(complexnum.Multiply(t.Amplitude, factor))
		s.terms[v] = t
	}

	return s
}

// Prune drops every term whose amplitude magnitude is not above eps and
// returns s. Insertion order of the survivors is kept.
// Complexity: O(n).
func (s *Superposition) Prune(eps float64) *Superposition {
	kept := s.order[:0]
	for _, v := range s.order {
		if complexnum.Magnitude(s.terms[v].Amplitude) > eps {
			kept = append(kept, v)
			continue
		}
		delete(s.terms, v)
	}
	s.order = kept

	return s
}

// Clone returns a deep copy of s; the result shares nothing with s.
// Complexity: O(n).
func (s *Superposition) Clone() *Superposition {
	cp := &Superposition{
		terms: make(map[uint64]BasisState, len(s.terms)),
		order: make([]uint64, 0, len(s.order)),
	}
	for _, v := range s.order {
		cp.insert(s.terms[v].Clone())
	}

	return cp
}

// ApproxEqual reports whether s and other hold the same (value, amplitude)
// pairs within eps. Terms whose magnitude is not above eps are ignored on
// both sides.
// Complexity: O(n + m).
func (s *Superposition) ApproxEqual(other *Superposition, eps float64) bool {
	if other == nil {
		return false
	}
	if !s.covers(other, eps) {
		return false
	}

	return other.covers(s, eps)
}

// covers reports whether every significant term of s has a matching term in other.
func (s *Superposition) covers(other *Superposition, eps float64) bool {
	var (
		b, o BasisState
		ok   bool
	)
	for _, v := range s.order {
		b = s.terms[v]
		if complexnum.Magnitude(b.Amplitude) <= eps {
			continue
		}
		if o, ok = other.terms[v]; !ok {
			return false
		}
		if !scalar.EqualWithinAbs(b.Amplitude.Real, o.Amplitude.Real, eps) ||
			!scalar.EqualWithinAbs(b.Amplitude.Imag, o.Amplitude.Imag, eps) {
			return false
		}
	}

	return true
}

// String is a debug form listing terms in insertion order: {0.7071|0>, 0.7071|1>}.
func (s *Superposition) String() string {
	parts := make([]string, 0, len(s.order))
	var b BasisState
	for _, v := range s.order {
		b = s.terms[v]
		if str := b.String(); str != "" {
			parts = append(parts, str)
			continue
		}
		parts = append(parts, "0"+b.Ket())
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
