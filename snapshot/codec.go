// SPDX-License-Identifier: MIT

package snapshot

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lvqubit/complexnum"
	"github.com/katalvlaran/lvqubit/qubit"
	"github.com/katalvlaran/lvqubit/state"
)

// Version is the document format written by Encode.
const Version = 1

type document struct {
	Version   int    `msgpack:"version"`
	BitLength uint   `msgpack:"bit_length"`
	Terms     []term `msgpack:"terms"`
}

type term struct {
	Value uint64  `msgpack:"value"`
	Re    float64 `msgpack:"re"`
	Im    float64 `msgpack:"im"`
}

// Encode serializes r.
// Complexity: O(n log n) for n terms (terms are sorted).
func Encode(r *qubit.Register) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("Encode: %w", ErrNilRegister)
	}

	terms := r.Terms()
	doc := document{
		Version:   Version,
		BitLength: r.BitLength(),
		Terms:     make([]term, len(terms)),
	}
	for i := range terms {
		doc.Terms[i] = term{
			Value: terms[i].Value,
			Re:    terms[i].Amplitude.Real,
			Im:    terms[i].Amplitude.Imag,
		}
	}

	data, err := msgpack.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	return data, nil
}

// Decode rebuilds a register from data, applying opts to it.
//
// Errors: ErrCorrupt for undecodable bytes and for documents whose terms do
// not form a valid register; ErrVersion for a foreign format version.
// Complexity: O(n).
func Decode(data []byte, opts ...qubit.Option) (*qubit.Register, error) {
	var doc document
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("Decode: %w: %w", ErrCorrupt, err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("Decode: version %d: %w", doc.Version, ErrVersion)
	}

	s := state.Empty()
	for i, t := range doc.Terms {
		b, err := state.NewBasisState(complexnum.New(t.Re, t.Im), t.Value, doc.BitLength)
		if err != nil {
			return nil, fmt.Errorf("Decode: term %d: %w: %w", i, ErrCorrupt, err)
		}
		if err = s.Add(b); err != nil {
			return nil, fmt.Errorf("Decode: term %d: %w: %w", i, ErrCorrupt, err)
		}
	}

	r, err := qubit.New(s, opts...)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w: %w", ErrCorrupt, err)
	}

	return r, nil
}

// Save encodes r into the file at path, replacing it.
func Save(path string, r *qubit.Register) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}

// Load decodes the register stored at path.
func Load(path string, opts ...qubit.Option) (*qubit.Register, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return Decode(data, opts...)
}
