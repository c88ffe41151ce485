// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); MulVec: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvqubit/complexnum"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag
	ctxMulVec   = "MulVec"   // product tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int                 // row and column counts (> 0)
	data []complexnum.Number // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Every entry starts as complexnum.Zero (a Scalar), so an untouched cell keeps
// the real fast paths of complexnum.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate and zero-fill the buffer.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	data := make([]complexnum.Number, rows*cols)
	for i := range data {
		data[i] = complexnum.Zero
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense from a slice of rows.
//
// Implementation:
//   - Stage 1: reject an empty input (ErrInvalidDimensions) and ragged rows (ErrBadShape).
//   - Stage 2: copy every entry through Set, so nil/NaN/Inf entries fail with ErrNaNInf.
//
// The input slices are not retained.
// Complexity: Time O(r*c), Space O(r*c).
func FromRows(rows [][]complexnum.Number) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), cols, ErrBadShape)
		}
	}

	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = range rows {
		for j = range rows[i] {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// mustFromRows is used by the gate constructors whose literals are known to be valid.
func mustFromRows(rows [][]complexnum.Number) *Dense {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (complexnum.Number, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return nil, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col). Nil and non-finite values are rejected with
// ErrNaNInf so a gate can never carry an undefined amplitude factor.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complexnum.Number) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if !complexnum.IsFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy. Numbers are values, so copying the buffer is enough.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]complexnum.Number, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows materializes the matrix as a fresh slice of rows.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ToRows() [][]complexnum.Number {
	rows := make([][]complexnum.Number, m.r)
	for i := 0; i < m.r; i++ {
		rows[i] = make([]complexnum.Number, m.c)
		copy(rows[i], m.data[i*m.c:(i+1)*m.c])
	}

	return rows
}

// MulVec returns m × v.
//
// Implementation:
//   - Stage 1: require len(v) == Cols (ErrDimensionMismatch).
//   - Stage 2: delegate to complexnum.MVMultiply over the row view.
//
// Complexity: Time O(r*c), Space O(r).
func (m *Dense) MulVec(v []complexnum.Number) ([]complexnum.Number, error) {
	if len(v) != m.c {
		return nil, fmt.Errorf("%s: vector length %d, want %d: %w", ctxMulVec, len(v), m.c, ErrDimensionMismatch)
	}
	out, err := complexnum.MVMultiply(m.ToRows(), v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxMulVec, err)
	}

	return out, nil
}

// ConjugateTranspose returns the Hermitian adjoint m†.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ConjugateTranspose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]complexnum.Number, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = complexnum.Conj(m.data[i*m.c+j])
		}
	}

	return out
}

// String renders rows as lines of comma-separated values using the
// complexnum display policy. Intended for logs and debugging.
// Complexity: Time O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(complexnum.Format(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
