// Package brainstates measures the algorithmic complexity of recurring
// activity patterns in brain-imaging time series — from raw per-session
// observation matrices to one metastate-complexity score per session.
//
// 🚀 What is brainstates?
//
//	A small, deterministic analysis library that brings together:
//		• Clustering: replicated k-means over pooled, mean-centered
//		  timepoints with a one-minus-correlation distance (kmeans/)
//		• Metastates: a centroid-geometry rule that collapses the four
//		  recurring states into two opposing macro-states (metastate/)
//		• Complexity: the classical LZ76 exhaustive-parsing estimator
//		  over the resulting binary occupancy series (lz76/)
//
// ✨ Why choose brainstates?
//
//   - Deterministic by default – every random draw flows from an explicit
//     seed; replicate streams are derived, never time-based
//   - Fail-fast validation – NaN/Inf contamination, shape mismatches and
//     degenerate clusterings surface as sentinel errors, never as a
//     silently wrong score
//   - Pure algorithms – no I/O, no logging, no global state; progress
//     reporting is an optional callback the caller owns
//
// The pipeline, leaf to root:
//
//	lz76/      — normalized Lempel–Ziv (1976) complexity of a binary series
//	kmeans/    — replicated correlation-distance k-means (labels + centroids)
//	metastate/ — session pooling, anti-correlation grouping, per-session scores
//
// Quick sketch of the data flow:
//
//	session matrices ──center──▶ pooled matrix ──kmeans──▶ 4 states
//	       ▲                                                 │
//	       └──── one score per session ◀──LZ76◀── 2 metastates
//
// Dive into each package's doc.go for the algorithm outline, options,
// error contracts and complexity notes.
//
//	go get github.com/neurolab/brainstates
package brainstates
