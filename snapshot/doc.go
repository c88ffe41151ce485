// SPDX-License-Identifier: MIT

// Package snapshot persists qubit registers as MessagePack documents.
//
// Document layout (field names as encoded):
//
//	version:    format version, currently 1
//	bit_length: register width
//	terms:      [{value, re, im}] sorted ascending by value
//
// Decoding rebuilds the register through qubit.New, so a decoded register is
// normalized and pruned like any other. The random stream is not persisted:
// pass qubit options to Decode to choose one.
package snapshot
