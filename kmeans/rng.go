// Package kmeans - RNG utilities shared by the replicate runners.
//
// This file centralizes deterministic random generation for all restarts.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms, and
//     across sequential vs parallel execution.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each replicate owns the stream
//     returned by replicateRNG; streams are never shared across goroutines.
package kmeans

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Every replicate needs an independent substream of the base seed so
//     that replicate r is the same run whether it executes first, last,
//     or concurrently with the others.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     consecutive stream identifiers.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// replicateRNG returns the deterministic RNG stream owned by one replicate.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func replicateRNG(seed int64, replicate int) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(s, uint64(replicate))))
}
