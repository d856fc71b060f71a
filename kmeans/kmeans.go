// Package kmeans - Lloyd iteration under the one-minus-correlation distance.
//
// This file contains the single-replicate machinery: k-means++ seeding,
// the assignment/update loop, the singleton empty-cluster reseed, and the
// public Cluster entry point.
//
// Design principles:
//   - Deterministic: all random draws come from the replicate's own stream;
//     every tie (nearest centroid, farthest point) resolves to the lowest index.
//   - Strict sentinels: only errors from types.go; validation precedes work.
//   - Hot-path discipline: rows are extracted once; inner loops reuse buffers.
package kmeans

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Cluster partitions the rows of obs into K clusters.
//
// Contracts:
//   - obs must be non-nil with at least K rows and 2 columns, all finite.
//   - Labels in the result are 1-based (1..K); Centroids is K×p.
//   - The winner is the replicate with the lowest total within-cluster
//     distance; ties go to the lowest replicate index, so the result does
//     not depend on Parallel.
//
// Errors: ErrNilMatrix, ErrTooFewRows, ErrTooFewColumns, ErrNonFinite
// before any replicate runs; ErrEmptyCluster if no replicate converges to
// K non-empty clusters.
//
// Complexity: O(R·I·n·K·p) time, O(n + K·p) space per concurrent replicate.
func Cluster(obs mat.Matrix, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	rows, err := extractRows(obs, o.K)
	if err != nil {
		return Result{}, err
	}

	win, rep, err := runReplicates(rows, o)
	if err != nil {
		return Result{}, err
	}

	// Convert internal 0-based labels to the public 1..K contract.
	labels := make([]int, len(win.labels))
	for i, l := range win.labels {
		labels[i] = l + 1
	}

	p := len(rows[0])
	cents := mat.NewDense(o.K, p, nil)
	for k := 0; k < o.K; k++ {
		cents.SetRow(k, win.centroids[k])
	}

	return Result{
		Labels:     labels,
		Centroids:  cents,
		Cost:       win.cost,
		Replicate:  rep,
		Iterations: win.iterations,
	}, nil
}

// extractRows validates obs (shape, finite-ness) and copies its rows into
// plain slices for the hot loops. Fail fast: the scan happens before any
// replicate is started.
//
// Complexity: O(n·p) time and space.
func extractRows(obs mat.Matrix, k int) ([][]float64, error) {
	if obs == nil {
		return nil, ErrNilMatrix
	}
	n, p := obs.Dims()
	if n < k {
		return nil, fmt.Errorf("%w: have %d rows, need %d", ErrTooFewRows, n, k)
	}
	if p < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrTooFewColumns, p)
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = mat.Row(nil, i, obs)
		for j, v := range rows[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d, column %d", ErrNonFinite, i, j)
			}
		}
	}

	return rows, nil
}

// corrDistance is the clustering metric: 1 − Pearson(x, c).
// A zero-variance vector has no defined correlation; such a pair is
// treated as uncorrelated (distance 1) so clustering can proceed.
//
// Complexity: O(p).
func corrDistance(x, c []float64) float64 {
	r := stat.Correlation(x, c, nil)
	if math.IsNaN(r) {
		return 1
	}
	return 1 - r
}

// replicateOutcome carries one restart's solution to the selection barrier.
type replicateOutcome struct {
	labels     []int       // 0-based assignment per row
	centroids  [][]float64 // K rows of length p
	cost       float64     // total within-cluster distance
	iterations int
	err        error
}

// runReplicate executes one full k-means restart from rng's stream.
//
// Loop invariants:
//   - labels[i] is always the nearest centroid of rows[i] under
//     corrDistance at the time of the last assignment pass.
//   - No cluster is empty after reseedEmpty returns.
//
// Complexity: O(I·n·K·p) time, O(n + K·p) space.
func runReplicate(rows [][]float64, k, maxIter int, tol float64, rng *rand.Rand) replicateOutcome {
	var (
		n      = len(rows)
		cents  = seedPlusPlus(rows, k, rng)
		labels = make([]int, n)
		iters  = 0
	)

	for iter := 1; iter <= maxIter; iter++ {
		iters = iter
		changed := assignRows(rows, cents, labels)
		changed = reseedEmpty(rows, cents, labels) || changed
		drift := updateCentroids(rows, labels, cents)
		if !changed || drift <= tol {
			break
		}
	}

	// Sync labels with the final centroids and check the K-non-empty contract.
	assignRows(rows, cents, labels)
	counts := make([]int, k)
	cost := 0.0
	for i, l := range labels {
		counts[l]++
		cost += corrDistance(rows[i], cents[l])
	}
	for c, cnt := range counts {
		if cnt == 0 {
			return replicateOutcome{err: fmt.Errorf("%w: cluster %d", ErrEmptyCluster, c+1)}
		}
	}

	return replicateOutcome{labels: labels, centroids: cents, cost: cost, iterations: iters}
}

// seedPlusPlus picks k initial centroids with k-means++ weighting under
// corrDistance: the first uniformly, each next proportionally to the
// squared distance from the nearest centroid already chosen. Degenerate
// data (all distances zero) falls back to a uniform draw.
//
// Complexity: O(n·k²·p) time, O(n + k·p) space.
func seedPlusPlus(rows [][]float64, k int, rng *rand.Rand) [][]float64 {
	var (
		n     = len(rows)
		cents = make([][]float64, 0, k)
		d2    = make([]float64, n)
	)
	cents = append(cents, cloneRow(rows[rng.Intn(n)]))

	for len(cents) < k {
		sum := 0.0
		for i, r := range rows {
			d := nearestDistance(r, cents)
			d2[i] = d * d
			sum += d2[i]
		}

		idx := 0
		if sum <= 0 {
			idx = rng.Intn(n)
		} else {
			target := rng.Float64() * sum
			acc := 0.0
			idx = n - 1
			for i := range d2 {
				acc += d2[i]
				if acc >= target {
					idx = i
					break
				}
			}
		}
		cents = append(cents, cloneRow(rows[idx]))
	}

	return cents
}

// nearestDistance returns the corrDistance from x to the closest centroid.
//
// Complexity: O(k·p).
func nearestDistance(x []float64, cents [][]float64) float64 {
	best := math.Inf(1)
	for _, c := range cents {
		if d := corrDistance(x, c); d < best {
			best = d
		}
	}
	return best
}

// assignRows relabels every row to its nearest centroid (lowest index wins
// ties) and reports whether any label changed.
//
// Complexity: O(n·k·p).
func assignRows(rows [][]float64, cents [][]float64, labels []int) bool {
	changed := false
	for i, r := range rows {
		best, bestD := 0, math.Inf(1)
		for c := range cents {
			if d := corrDistance(r, cents[c]); d < bestD {
				best, bestD = c, d
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}
	return changed
}

// reseedEmpty applies the singleton action: any cluster left without
// members adopts the row farthest from its currently assigned centroid
// (lowest row index on ties). Returns whether any reseed happened.
//
// Complexity: O(k·n·p) when reseeding, O(k + n) otherwise.
func reseedEmpty(rows [][]float64, cents [][]float64, labels []int) bool {
	counts := make([]int, len(cents))
	for _, l := range labels {
		counts[l]++
	}

	reseeded := false
	for c, cnt := range counts {
		if cnt > 0 {
			continue
		}
		far, farD := -1, -1.0
		for i, r := range rows {
			if counts[labels[i]] <= 1 {
				continue // do not strip another cluster down to empty
			}
			if d := corrDistance(r, cents[labels[i]]); d > farD {
				far, farD = i, d
			}
		}
		if far < 0 {
			continue // nothing can be moved; the final contract check reports it
		}
		copy(cents[c], rows[far])
		counts[labels[far]]--
		labels[far] = c
		counts[c]++
		reseeded = true
	}
	return reseeded
}

// updateCentroids recomputes each centroid as the arithmetic mean of its
// members and returns the maximum Euclidean drift across centroids.
// An empty cluster keeps its previous centroid (drift 0 for it);
// reseedEmpty has already handled emptiness within the iteration.
//
// Complexity: O(n·p + k·p).
func updateCentroids(rows [][]float64, labels []int, cents [][]float64) float64 {
	var (
		k      = len(cents)
		p      = len(rows[0])
		sums   = make([][]float64, k)
		counts = make([]int, k)
	)
	for c := range sums {
		sums[c] = make([]float64, p)
	}
	for i, r := range rows {
		floats.Add(sums[labels[i]], r)
		counts[labels[i]]++
	}

	drift := 0.0
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
		if d := floats.Distance(cents[c], sums[c], 2); d > drift {
			drift = d
		}
		copy(cents[c], sums[c])
	}
	return drift
}

// cloneRow copies a row so centroid mutation never aliases observations.
func cloneRow(r []float64) []float64 {
	out := make([]float64, len(r))
	copy(out, r)
	return out
}
