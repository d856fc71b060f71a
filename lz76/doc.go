// Package lz76 computes the Lempel–Ziv (1976) complexity of finite binary
// sequences, with optional length normalization.
//
// 🚀 What is LZ76 complexity?
//
//	LZ76 parses a sequence left to right into the smallest number of
//	"phrases", where each phrase is the shortest extension of the already
//	seen history that has never occurred before.  The phrase count c(n)
//	grows slowly for repetitive sequences and approaches n/log2(n) for
//	patternless ones, which makes it a classical, distribution-free
//	complexity estimator for symbolic dynamics:
//	  • EEG/fMRI state-occupancy series
//	  • spike trains & symbolic time series
//	  • randomness and compressibility screening
//
// ✨ Key features:
//   - Exhaustive parsing (Kaspar–Schuster scan): candidate matches may
//     overlap the phrase being built — the strictest, most accurate variant
//   - Primitive parsing: matches are confined to the closed history,
//     yielding a coarser (never smaller) phrase count
//   - Optional normalization by n/log2(n), the asymptotic phrase count of
//     a random binary sequence, so scores compare across lengths
//
// ⚙️ Usage:
//
//	import "github.com/neurolab/brainstates/lz76"
//
//	opts := lz76.DefaultOptions() // Exhaustive + Normalize
//	score, err := lz76.Complexity(series, &opts)
//
//	raw, err := lz76.PhraseCount(series, lz76.Exhaustive)
//
// Conventions for degenerate inputs:
//   - length 0 ⇒ ErrEmptySequence
//   - length 1 ⇒ phrase count 1; normalized score 0.0 (a single symbol
//     carries no sequential structure, and n/log2(n) is undefined at n=1)
//
// Complexity:
//
//   - Time:  O(n²) worst case (exhaustive scan), O(n³) worst case
//     (primitive scan); both are fast in practice for the hundreds to low
//     thousands of symbols this estimator is meant for.
//   - Space: O(1) beyond the input for Exhaustive, O(1) for Primitive.
package lz76
