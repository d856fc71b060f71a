// Package kmeans clusters high-dimensional observations with Lloyd's
// algorithm under a one-minus-Pearson-correlation distance, repeated over
// many independent random initializations ("replicates") and keeping the
// lowest-cost solution.
//
// 🚀 What is correlation k-means?
//
//	Timepoint observations from brain recordings are compared by the
//	*shape* of their spatial pattern, not its amplitude, so the natural
//	distance is 1 − corr(x, c).  Each replicate seeds centroids with
//	k-means++ (under the same distance), iterates assignment/update to
//	convergence, and reports its total within-cluster distance; the
//	replicate with the lowest total wins.
//
// ✨ Key features:
//   - Deterministic: every replicate draws from its own RNG stream derived
//     from (Seed, replicate index) — results are identical whether the
//     replicates run sequentially or in parallel
//   - Parallel fan-out: replicates are independent; enable Parallel and
//     bound the workers to spread them across cores (wall-clock only —
//     the selected solution does not change)
//   - Fail-fast validation: NaN/Inf or an undersized matrix is rejected
//     before any replicate runs
//   - Empty clusters are reseeded mid-iteration (singleton action); a
//     *final* solution with an empty cluster is an error, never a result
//
// ⚙️ Usage:
//
//	import "github.com/neurolab/brainstates/kmeans"
//
//	res, err := kmeans.Cluster(pooled,
//	    kmeans.WithK(4),
//	    kmeans.WithReplicates(200),
//	    kmeans.WithSeed(42),
//	)
//	// res.Labels   — one label in 1..K per row
//	// res.Centroids — K×p matrix of cluster means
//
// Errors (sentinel):
//
//	– ErrNilMatrix     if the observation matrix is nil.
//	– ErrTooFewRows    if there are fewer rows than clusters.
//	– ErrTooFewColumns if rows have fewer than 2 features (correlation
//	                   is undefined on a single feature).
//	– ErrNonFinite     if the matrix contains NaN or Inf.
//	– ErrEmptyCluster  if no replicate converged to K non-empty clusters.
//
// Complexity:
//
//   - Time:  O(R · I · n · K · p) where R=replicates, I=iterations,
//     n=rows, p=features.
//   - Space: O(n + K·p) per concurrent replicate.
package kmeans
