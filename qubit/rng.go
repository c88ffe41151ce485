// SPDX-License-Identifier: MIT

package qubit

import "math/rand/v2"

// streamSalt separates the two PCG seed words derived from one user seed.
const streamSalt uint64 = 0x9e3779b97f4a7c15

// sourceFromSeed returns a deterministic PCG source for seed.
// Complexity: O(1).
func sourceFromSeed(seed uint64) rand.Source {
	return rand.NewPCG(seed, deriveSeed(seed, streamSalt))
}

// entropySource returns a PCG source seeded from the runtime's entropy-backed
// global generator.
func entropySource() rand.Source {
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, so neighbouring stream ids give unrelated seeds.
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// deriveRand creates an independent stream from base and a stream id.
// base.Uint64 is consumed once, so two derivations with the same id still
// differ.
// Complexity: O(1).
func deriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(sourceFromSeed(deriveSeed(base.Uint64(), stream)))
}
