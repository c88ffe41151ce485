// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvqubit/matrix"
	"github.com/katalvlaran/lvqubit/qubit"
)

// unitaryEps is the tolerance used to flag non-unitary matrix steps.
const unitaryEps = 1e-9

// Option customizes Run.
type Option func(*runConfig)

type runConfig struct {
	logger zerolog.Logger
	seed   *uint64
}

// WithLogger attaches a logger to the run and to the register it builds.
func WithLogger(l zerolog.Logger) Option {
	return func(c *runConfig) {
		c.logger = l
	}
}

// WithSeed overrides the program's seed.
func WithSeed(seed uint64) Option {
	return func(c *runConfig) {
		c.seed = &seed
	}
}

// TraceEntry records the register after one step.
type TraceEntry struct {
	Step     int
	Op       string
	Detail   string // operands, e.g. "bit 0" or "[0, 0] -> [1, 1] identity"
	State    string
	Measured bool
	Value    uint64
}

// String renders the entry on one line:
//
//	#0 h bit 0 => 0.7071|00> + 0.7071|01>
//	#4 measure bit 0 = 1 => |01>
func (e TraceEntry) String() string {
	head := fmt.Sprintf("#%d %s %s", e.Step, e.Op, e.Detail)
	if e.Measured {
		head += fmt.Sprintf(" = %d", e.Value)
	}
	return head + " => " + e.State
}

// Result is the outcome of Run.
type Result struct {
	Program  *Program
	Register *qubit.Register
	Trace    []TraceEntry
}

// Measurements returns the values observed by measure steps, in order.
func (r *Result) Measurements() []uint64 {
	var out []uint64
	for _, e := range r.Trace {
		if e.Measured {
			out = append(out, e.Value)
		}
	}

	return out
}

// WriteTrace writes one line per trace entry to w.
func (r *Result) WriteTrace(w io.Writer) error {
	for _, e := range r.Trace {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}

	return nil
}

// Run validates p, builds its register and executes every step in order.
// The first failing step aborts the run; its error names the step index.
func Run(p *Program, opts ...Option) (*Result, error) {
	cfg := runConfig{logger: zerolog.Nop(), seed: p.Seed}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.With().Str("component", "circuit").Str("program", p.Name).Logger()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	regOpts := []qubit.Option{qubit.WithLogger(cfg.logger)}
	if cfg.seed != nil {
		regOpts = append(regOpts, qubit.WithSeed(*cfg.seed))
	}
	reg, err := qubit.FromKet(p.Initial, regOpts...)
	if err != nil {
		return nil, fmt.Errorf("Run(%s): initial: %w", p.Name, err)
	}
	log.Info().Uint("bits", reg.BitLength()).Int("steps", len(p.Steps)).Msg("running program")

	res := &Result{Program: p, Register: reg, Trace: make([]TraceEntry, 0, len(p.Steps))}
	for i := range p.Steps {
		entry, err := execute(reg, &p.Steps[i], log)
		if err != nil {
			return nil, fmt.Errorf("Run(%s): step %d (%s): %w", p.Name, i, p.Steps[i].Op, err)
		}
		entry.Step = i
		entry.Op = p.Steps[i].Op
		entry.State = reg.String()
		res.Trace = append(res.Trace, entry)
		log.Debug().Int("step", i).Str("op", entry.Op).Str("state", entry.State).Msg("step done")
	}

	return res, nil
}

// execute applies one validated step to reg.
func execute(reg *qubit.Register, s *Step, log zerolog.Logger) (TraceEntry, error) {
	sel := s.Bits.Selector()
	entry := TraceEntry{Detail: sel.String()}

	var err error
	switch s.Op {
	case OpX:
		err = reg.X(sel)
	case OpY:
		err = reg.Y(sel)
	case OpZ:
		err = reg.Z(sel)
	case OpH:
		err = reg.Hadamard(sel)
	case OpPhase:
		entry.Detail = fmt.Sprintf("%s theta=%g", sel, s.Theta)
		err = reg.Phase(sel, s.Theta)
	case OpMatrix:
		err = applyMatrix(reg, s, sel, log)
	case OpOperate:
		fn, _ := Lookup(s.Func)
		src, dst := s.Src.Range(), s.Dst.Range()
		entry.Detail = fmt.Sprintf("%s -> %s %s", src, dst, s.Func)
		err = reg.Operate(src, dst, fn)
	case OpTensor:
		entry.Detail = s.Ket
		var other *qubit.Register
		if other, err = qubit.FromKet(s.Ket); err == nil {
			err = reg.Tensor(other)
		}
	case OpMeasure:
		var m qubit.Measurement
		if m, err = reg.Measure(sel); err == nil {
			entry.Measured = true
			entry.Value = m.Value
		}
	default:
		err = ErrUnknownOp
	}

	return entry, err
}

// applyMatrix runs a matrix step, warning when the gate is not unitary.
func applyMatrix(reg *qubit.Register, s *Step, sel qubit.Selector, log zerolog.Logger) error {
	g, err := s.gate()
	if err != nil {
		return err
	}
	if ok, _ := matrix.IsUnitary(g, unitaryEps); !ok {
		log.Warn().Str("matrix", g.String()).Msg("matrix step is not unitary; state will be renormalized")
	}

	return reg.OperateMatrix(sel, g)
}
