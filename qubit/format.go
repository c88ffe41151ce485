// SPDX-License-Identifier: MIT

package qubit

import "strings"

// String renders the register in ascending value order, for example
// "0.7071|00> - 0.7071|11>".
//
// Rules:
//   - a coefficient of 1 is elided and -1 renders as a bare sign;
//   - terms whose amplitude rounds to zero are omitted;
//   - terms are joined by " + ", or by " - " when the next term starts
//     with a minus sign, which then moves into the separator;
//   - a coefficient with both real and imaginary parts is parenthesized.
//
// The output of a register built from unit real amplitudes parses back with
// ket.Parse into the same terms.
func (r *Register) String() string {
	var sb strings.Builder
	for _, b := range r.state.Sorted() {
		s := b.String()
		if s == "" {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(s)
			continue
		}
		if rest, ok := strings.CutPrefix(s, "-"); ok {
			sb.WriteString(" - ")
			sb.WriteString(rest)
			continue
		}
		sb.WriteString(" + ")
		sb.WriteString(s)
	}

	return sb.String()
}
