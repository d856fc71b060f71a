// Package lz76 - option types and sentinel errors for the LZ76 estimator.
package lz76

import "errors"

// Sentinel errors returned by the LZ76 estimator.
var (
	// ErrEmptySequence indicates that an empty sequence was passed;
	// LZ76 complexity is defined for length >= 1 only.
	ErrEmptySequence = errors.New("lz76: sequence must be non-empty")

	// ErrUnknownMode indicates a ParseMode value outside the declared set.
	ErrUnknownMode = errors.New("lz76: unknown parse mode")
)

// ParseMode selects the LZ76 parsing variant.
//
//   - Exhaustive — Kaspar–Schuster scan; a candidate match may start
//     anywhere in the history and extend past the start of the phrase
//     currently being built (overlap allowed).  This is the classical
//     c(n) of Lempel–Ziv 1976 and the variant used by the metastate
//     pipeline.
//
//   - Primitive — a match must end strictly before the current phrase
//     starts.  Coarser parsing; the phrase count is never smaller than
//     the exhaustive one.
type ParseMode int

const (
	// Exhaustive parsing: overlapping matches into the growing phrase are allowed.
	Exhaustive ParseMode = iota

	// Primitive parsing: matches are confined to the closed history.
	Primitive
)

// Options configures the LZ76 estimator.
//
// Mode      – parsing variant (Exhaustive or Primitive).
// Normalize – if true, divide the raw phrase count by n/log2(n) so that
//
//	scores are comparable across sequence lengths; a random
//	binary sequence scores near 1, a constant one near 0.
type Options struct {
	Mode      ParseMode // parsing variant
	Normalize bool      // divide by the asymptotic random phrase count
}

// DefaultOptions returns the configuration used by the metastate pipeline:
// exhaustive parsing with normalization enabled.
func DefaultOptions() Options {
	return Options{Mode: Exhaustive, Normalize: true}
}
