// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvqubit/complexnum"
	"github.com/katalvlaran/lvqubit/ket"
	"github.com/katalvlaran/lvqubit/matrix"
)

// Supported step ops.
const (
	OpX       = "x"
	OpY       = "y"
	OpZ       = "z"
	OpH       = "h"
	OpPhase   = "phase"
	OpMatrix  = "matrix"
	OpOperate = "operate"
	OpTensor  = "tensor"
	OpMeasure = "measure"
)

// Program is a named sequence of steps over an initial ket.
type Program struct {
	Name    string  `yaml:"name"`
	Initial string  `yaml:"initial"`
	Seed    *uint64 `yaml:"seed"`
	Steps   []Step  `yaml:"steps"`
}

// Step is one register operation. Which fields apply depends on Op.
type Step struct {
	Op     string        `yaml:"op"`
	Bits   BitList       `yaml:"bits"`
	Src    RangeSpec     `yaml:"src"`
	Dst    RangeSpec     `yaml:"dst"`
	Theta  float64       `yaml:"theta"`
	Matrix [][][]float64 `yaml:"matrix"`
	Func   string        `yaml:"func"`
	Ket    string        `yaml:"ket"`
}

// Load decodes and validates a program. Unknown fields are rejected.
func Load(r io.Reader) (*Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Program
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Load: %w", ErrNoInitial)
		}
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks every field that can be checked without a register:
// the initial ket, known ops and transforms, matrix shapes and tensor kets.
// Bit indices are checked by the register when the step runs.
func (p *Program) Validate() error {
	if strings.TrimSpace(p.Initial) == "" {
		return fmt.Errorf("Validate(%s): %w", p.Name, ErrNoInitial)
	}
	if _, err := ket.Parse(p.Initial); err != nil {
		return fmt.Errorf("Validate(%s): initial: %w", p.Name, err)
	}
	for i := range p.Steps {
		if err := p.Steps[i].validate(); err != nil {
			return fmt.Errorf("Validate(%s): step %d (%s): %w", p.Name, i, p.Steps[i].Op, err)
		}
	}

	return nil
}

func (s *Step) validate() error {
	switch s.Op {
	case OpX, OpY, OpZ, OpH, OpPhase, OpMeasure:
		return nil
	case OpMatrix:
		_, err := s.gate()
		return err
	case OpOperate:
		if _, ok := Lookup(s.Func); !ok {
			return fmt.Errorf("func %q: %w", s.Func, ErrUnknownFunc)
		}
		return nil
	case OpTensor:
		if _, err := ket.Parse(s.Ket); err != nil {
			return fmt.Errorf("ket %q: %w: %w", s.Ket, ErrBadStep, err)
		}
		return nil
	default:
		return ErrUnknownOp
	}
}

// gate builds the 2×2 matrix of a matrix step.
func (s *Step) gate() (*matrix.Dense, error) {
	if len(s.Matrix) != matrix.GateSize {
		return nil, fmt.Errorf("matrix: want %d rows: %w", matrix.GateSize, ErrBadStep)
	}
	rows := make([][]complexnum.Number, matrix.GateSize)
	for i, row := range s.Matrix {
		if len(row) != matrix.GateSize {
			return nil, fmt.Errorf("matrix row %d: want %d entries: %w", i, matrix.GateSize, ErrBadStep)
		}
		rows[i] = make([]complexnum.Number, matrix.GateSize)
		for j, pair := range row {
			if len(pair) != 2 {
				return nil, fmt.Errorf("matrix[%d][%d]: want [re, im]: %w", i, j, ErrBadStep)
			}
			rows[i][j] = complexnum.New(pair[0], pair[1])
		}
	}

	g, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w: %w", ErrBadStep, err)
	}

	return g, nil
}
