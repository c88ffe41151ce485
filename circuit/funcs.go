// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math/bits"
	"sort"
	"sync"

	"github.com/katalvlaran/lvqubit/qubit"
)

var (
	funcsMu sync.RWMutex
	funcs   = map[string]qubit.TransformFunc{
		"identity":  func(x uint64) uint64 { return x },
		"not":       func(x uint64) uint64 { return ^x },
		"increment": func(x uint64) uint64 { return x + 1 },
		"decrement": func(x uint64) uint64 { return x - 1 },
		"parity":    func(x uint64) uint64 { return uint64(bits.OnesCount64(x) & 1) },
		"double":    func(x uint64) uint64 { return x << 1 },
	}
)

// Register makes fn available to operate steps under name, replacing any
// previous transform of that name. Safe for concurrent use.
func Register(name string, fn qubit.TransformFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("Register(%q): %w", name, qubit.ErrInvalidFunction)
	}
	funcsMu.Lock()
	funcs[name] = fn
	funcsMu.Unlock()

	return nil
}

// Lookup returns the transform registered under name.
func Lookup(name string) (qubit.TransformFunc, bool) {
	funcsMu.RLock()
	defer funcsMu.RUnlock()
	fn, ok := funcs[name]

	return fn, ok
}

// Funcs returns the registered transform names in sorted order.
func Funcs() []string {
	funcsMu.RLock()
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	funcsMu.RUnlock()
	sort.Strings(names)

	return names
}
