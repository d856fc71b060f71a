package lz76

import "math"

// Complexity computes the LZ76 complexity of seq under opts.
// Passing opts==nil is equivalent to DefaultOptions().
//
// Algorithm Outline (Exhaustive, Kaspar–Schuster 1987):
//  1. Maintain the length l of the already parsed prefix (the "history"),
//     a candidate match start i < l, the current extension length k, and
//     the longest extension kmax seen for this phrase.
//  2. Compare seq[i+k-1] with seq[l+k-1] (1-based positions):
//     match  ⇒ extend k; a match running past l is allowed (overlap).
//     differ ⇒ advance i; once every start 0..l-1 has been tried, the
//     phrase of length kmax+1 is complete: increment the
//     phrase counter and advance l past it.
//  3. The scan ends when the sequence is exhausted; a final partial
//     phrase counts.
//
// Normalization divides the raw count c(n) by n/log2(n), the expected
// asymptotic phrase count of a random binary sequence of length n.
//
// Degenerate inputs: length 0 returns ErrEmptySequence; length 1 returns
// 0.0 when normalizing (and 1.0 raw) — see the package documentation.
//
// The result is always finite and non-negative for a valid input.
//
// Complexity: O(n²) time worst case, O(1) extra space.
func Complexity(seq []bool, opts *Options) (float64, error) {
	var o Options
	if opts != nil {
		o = *opts
	} else {
		o = DefaultOptions()
	}

	c, err := PhraseCount(seq, o.Mode)
	if err != nil {
		return 0, err
	}
	if !o.Normalize {
		return float64(c), nil
	}

	n := len(seq)
	if n == 1 {
		// n/log2(n) is undefined at n=1; pin the normalized boundary to 0.
		return 0, nil
	}

	return float64(c) * math.Log2(float64(n)) / float64(n), nil
}

// PhraseCount returns the raw LZ76 phrase count of seq under mode.
// A sequence of length 1 is a single trivial phrase (count 1).
//
// Complexity: O(n²) for Exhaustive, O(n³) worst case for Primitive.
func PhraseCount(seq []bool, mode ParseMode) (int, error) {
	n := len(seq)
	if n == 0 {
		return 0, ErrEmptySequence
	}
	if n == 1 {
		return 1, nil
	}

	switch mode {
	case Exhaustive:
		return exhaustiveCount(seq), nil
	case Primitive:
		return primitiveCount(seq), nil
	default:
		return 0, ErrUnknownMode
	}
}

// exhaustiveCount implements the Kaspar–Schuster scan for the classical
// exhaustive production history.  Variables follow the published
// pseudocode: l is the 1-based length of the parsed prefix, i the 0-based
// candidate match start, k the current extension length, kmax the longest
// extension found for the phrase under construction.
//
// Precondition: len(seq) >= 2.
//
// Complexity: O(n²) time worst case, O(1) space.
func exhaustiveCount(seq []bool) int {
	var (
		n    = len(seq)
		c    = 1 // the first symbol is always a phrase of its own
		l    = 1
		i    = 0
		k    = 1
		kmax = 1
	)
	for {
		if seq[i+k-1] != seq[l+k-1] {
			if k > kmax {
				kmax = k
			}
			i++
			if i == l {
				// Every start in the history failed to extend further:
				// the phrase of length kmax is complete.
				c++
				l += kmax
				if l+1 > n {
					break
				}
				i, k, kmax = 0, 1, 1
			} else {
				k = 1
			}
		} else {
			k++
			if l+k > n {
				// The sequence ended mid-match; the tail is the last phrase.
				c++
				break
			}
		}
	}

	return c
}

// primitiveCount parses seq so that each phrase is the longest prefix of
// the unparsed tail that occurs in the closed history (matches must end
// strictly before the phrase start), plus one fresh symbol.  A tail that
// is fully reproducible still counts as a final phrase.
//
// Precondition: len(seq) >= 2.
//
// Complexity: O(n³) time worst case, O(1) space.
func primitiveCount(seq []bool) int {
	var (
		n   = len(seq)
		c   = 0
		pos = 0
	)
	for pos < n {
		// k = longest reproducible prefix of seq[pos:] within seq[:pos].
		k := 0
		for pos+k < n {
			found := false
			for i := 0; i+k < pos; i++ {
				match := true
				for j := 0; j <= k; j++ {
					if seq[i+j] != seq[pos+j] {
						match = false
						break
					}
				}
				if match {
					found = true
					break
				}
			}
			if !found {
				break
			}
			k++
		}
		pos += k + 1 // reproducible prefix plus one innovating symbol
		c++
	}

	return c
}
