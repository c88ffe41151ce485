// SPDX-License-Identifier: MIT

package snapshot_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lvqubit/qubit"
	"github.com/katalvlaran/lvqubit/snapshot"
	"github.com/katalvlaran/lvqubit/state"
)

// prepared returns a 2-bit register with complex amplitudes.
func prepared(t *testing.T) *qubit.Register {
	t.Helper()
	r, err := qubit.FromKet("|00>", qubit.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, r.Hadamard(qubit.All()))
	require.NoError(t, r.Phase(qubit.Bit(1), math.Pi/3))

	return r
}

// TestEncodeDecode preserves width and amplitudes.
func TestEncodeDecode(t *testing.T) {
	r := prepared(t)
	data, err := snapshot.Encode(r)
	require.NoError(t, err)

	got, err := snapshot.Decode(data, qubit.WithSeed(2))
	require.NoError(t, err)
	assert.Equal(t, r.BitLength(), got.BitLength())
	assert.True(t, r.Snapshot().ApproxEqual(got.Snapshot(), 1e-15))
	assert.Equal(t, r.String(), got.String())
}

// TestEncode_Layout pins the field names of the document.
func TestEncode_Layout(t *testing.T) {
	r, err := qubit.FromKet("|10>+|01>")
	require.NoError(t, err)
	data, err := snapshot.Encode(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, msgpack.Unmarshal(data, &raw))
	assert.EqualValues(t, snapshot.Version, raw["version"])
	assert.EqualValues(t, 2, raw["bit_length"])

	terms, ok := raw["terms"].([]any)
	require.True(t, ok)
	require.Len(t, terms, 2)
	first, ok := terms[0].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, first["value"])
	assert.InDelta(t, 1/math.Sqrt2, first["re"], 1e-12)
}

// TestDecode_Errors covers the sentinel paths.
func TestDecode_Errors(t *testing.T) {
	badVersion, err := msgpack.Marshal(map[string]any{"version": 9, "bit_length": 1})
	require.NoError(t, err)
	outOfRange, err := msgpack.Marshal(map[string]any{
		"version": snapshot.Version, "bit_length": 1,
		"terms": []map[string]any{{"value": 2, "re": 1.0, "im": 0.0}},
	})
	require.NoError(t, err)
	empty, err := msgpack.Marshal(map[string]any{"version": snapshot.Version, "bit_length": 1})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"garbage", []byte{0xc1}, snapshot.ErrCorrupt},
		{"version", badVersion, snapshot.ErrVersion},
		{"value out of range", outOfRange, state.ErrValueOutOfRange},
		{"no terms", empty, qubit.ErrInvalidState},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := snapshot.Decode(tc.data)
			assert.ErrorIs(t, err, tc.want)
			if tc.name != "version" {
				assert.ErrorIs(t, err, snapshot.ErrCorrupt)
			}
		})
	}
}

// TestEncode_Nil rejects a nil register.
func TestEncode_Nil(t *testing.T) {
	_, err := snapshot.Encode(nil)
	assert.ErrorIs(t, err, snapshot.ErrNilRegister)
}

// TestSaveLoad round-trips through a file.
func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reg.qsnap")
	r := prepared(t)
	require.NoError(t, snapshot.Save(path, r))

	got, err := snapshot.Load(path)
	require.NoError(t, err)
	assert.Equal(t, r.String(), got.String())

	_, err = snapshot.Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
