// Package metastate - the anti-correlation grouping rule.
//
// Given the four cluster centroids, the rule pairs every state with its
// most anti-correlated partner and demands the pairing be mutual. Group A
// seeds with state 1 and its partner; group B is the complement. The rule
// is pure centroid geometry — deterministic for fixed centroids, never
// learned, never arbitrary.
package metastate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Grouping is the immutable 2-coloring of the four states produced by
// GroupStates. The zero value is not meaningful; always obtain one from
// GroupStates.
type Grouping struct {
	anti [NumStates]int  // anti[k-1] = the state most anti-correlated with k (1-based)
	isB  [NumStates]bool // isB[k-1] = state k belongs to MetastateB
}

// GroupStates partitions the NumStates cluster centroids (rows of the
// centroids matrix) into two opposing metastates.
//
// Algorithm:
//  1. Compute the 4×4 Pearson correlation matrix of centroid rows.
//  2. For every state k, idx(k) = the state whose centroid is least
//     correlated with k's (argmin over column k; lowest index on ties).
//  3. Enforce mutuality: idx(idx(k)) == k for every k, otherwise
//     ErrGroupingInconsistent — the two-lobe premise fails.
//  4. Metastate A = {1, idx(1)}; metastate B = the remaining pair.
//
// A zero-variance centroid has no defined correlation with anything; such
// entries are treated as correlation 0 and can only arise from degenerate
// input, where the mutuality check rejects the solution.
//
// Complexity: O(K²·p) time, O(K²) space.
func GroupStates(centroids *mat.Dense) (Grouping, error) {
	if centroids == nil {
		return Grouping{}, ErrBadCentroids
	}
	k, p := centroids.Dims()
	if k != NumStates || p < 2 {
		return Grouping{}, fmt.Errorf("%w: got %d×%d", ErrBadCentroids, k, p)
	}

	// Stage 1: pairwise centroid correlations.
	var corr [NumStates][NumStates]float64
	for i := 0; i < NumStates; i++ {
		for j := 0; j < NumStates; j++ {
			r := stat.Correlation(centroids.RawRowView(i), centroids.RawRowView(j), nil)
			if math.IsNaN(r) {
				r = 0
			}
			corr[i][j] = r
		}
	}

	// Stage 2: nearest anti-correlate per state (argmin over column k).
	var idx [NumStates]int
	for c := 0; c < NumStates; c++ {
		best, bestR := 0, math.Inf(1)
		for r := 0; r < NumStates; r++ {
			if corr[r][c] < bestR {
				best, bestR = r, corr[r][c]
			}
		}
		idx[c] = best
	}

	// Stage 3: the pairing must be an involution.
	for c := 0; c < NumStates; c++ {
		if idx[idx[c]] != c {
			return Grouping{}, fmt.Errorf("%w: state %d → %d → %d",
				ErrGroupingInconsistent, c+1, idx[c]+1, idx[idx[c]]+1)
		}
	}

	// Stage 4: seed group A with state 1 and its anti-correlate.
	var g Grouping
	inA := [NumStates]bool{}
	inA[0] = true
	inA[idx[0]] = true
	for s := 0; s < NumStates; s++ {
		g.anti[s] = idx[s] + 1
		g.isB[s] = !inA[s]
	}

	return g, nil
}

// Apply maps a 1-based cluster label series onto the boolean metastate
// series (true = MetastateB). Labels outside 1..NumStates yield ErrBadLabel.
//
// Complexity: O(n).
func (g Grouping) Apply(labels []int) ([]bool, error) {
	out := make([]bool, len(labels))
	for i, l := range labels {
		if l < 1 || l > NumStates {
			return nil, fmt.Errorf("%w: label %d at index %d", ErrBadLabel, l, i)
		}
		out[i] = g.isB[l-1]
	}
	return out, nil
}

// MetastateOf reports which metastate the 1-based cluster label belongs to.
// Panics on a label outside 1..NumStates (programmer error).
func (g Grouping) MetastateOf(label int) Metastate {
	if label < 1 || label > NumStates {
		panic(ErrBadLabel.Error())
	}
	if g.isB[label-1] {
		return MetastateB
	}
	return MetastateA
}

// AntiCorrelate returns the 1-based label paired with the given label.
// Panics on a label outside 1..NumStates (programmer error).
func (g Grouping) AntiCorrelate(label int) int {
	if label < 1 || label > NumStates {
		panic(ErrBadLabel.Error())
	}
	return g.anti[label-1]
}

// GroupA returns the two 1-based labels forming metastate A, ascending.
func (g Grouping) GroupA() [2]int { return g.members(false) }

// GroupB returns the two 1-based labels forming metastate B, ascending.
func (g Grouping) GroupB() [2]int { return g.members(true) }

func (g Grouping) members(b bool) [2]int {
	var out [2]int
	i := 0
	for s := 0; s < NumStates; s++ {
		if g.isB[s] == b {
			out[i] = s + 1
			i++
		}
	}
	return out
}
