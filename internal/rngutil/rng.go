// Package rngutil centralizes deterministic random-stream derivation for
// the search driver's multi-start loop.
//
// Goals:
//   - Determinism: same seed => identical per-restart random streams
//     across platforms.
//   - Encapsulation: a single RNG factory, no time-based sources hidden
//     anywhere in the core engine.
//
// Concurrency: *rand.Rand is not goroutine-safe; each restart must use
// its own derived stream rather than sharing one.
package rngutil

import "math/rand"

// defaultSeed is the fixed seed used when a caller passes seed==0.
const defaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand. seed==0 resolves to
// defaultSeed so a zero-value Options still produces reproducible runs.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed via a SplitMix64-style avalanche finalizer, so small
// changes in stream produce well-distributed, decorrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic RNG stream from base and a
// stream identifier (typically the restart index), so every restart of a
// multi-start search gets its own decorrelated-but-reproducible stream.
// base.Int63() is consumed once first to decorrelate consecutive
// derivations; if base is nil, defaultSeed is used as the parent.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
