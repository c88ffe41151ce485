// SPDX-License-Identifier: MIT

package snapshot

import "errors"

var (
	// ErrVersion indicates a document written by an unsupported format version.
	ErrVersion = errors.New("snapshot: unsupported version")

	// ErrCorrupt indicates bytes that do not decode into a valid register.
	ErrCorrupt = errors.New("snapshot: corrupt document")

	// ErrNilRegister indicates a nil register passed to Encode or Save.
	ErrNilRegister = errors.New("snapshot: nil register")
)
