// SPDX-License-Identifier: MIT

// Package circuit runs declarative register programs written in YAML.
//
// A program names an initial ket and a list of steps applied in order:
//
//	name: bell
//	initial: "|00>"
//	seed: 7
//	steps:
//	  - op: h
//	    bits: 0
//	  - op: operate
//	    src: 0
//	    dst: 1
//	    func: identity
//	  - op: measure
//
// Step fields by op:
//
//	x, y, z, h   bits
//	phase        bits, theta (radians)
//	matrix       bits, matrix: 2×2 of [re, im] pairs
//	operate      src, dst, func (a registered transform)
//	tensor       ket
//	measure      bits
//
// bits is absent (all bits), an integer, or a list of integers. src and dst
// are absent (whole register), an integer, or a two-element list [a, b].
//
// Run records one TraceEntry per step with the rendered state after it.
package circuit
