// Package metastate - the pipeline orchestrator.
//
// This file wires the stages end to end: center → pool → validate →
// cluster once → group → re-segment → score. Stage order and failure
// behavior follow one policy: every error is raised at the point of
// detection and propagates uncaught — a caller gets a clear failure
// reason, never a silently wrong score.
package metastate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/neurolab/brainstates/kmeans"
	"github.com/neurolab/brainstates/lz76"
)

// Stage names passed to the Progress callback.
const (
	stagePooling    = "centering and pooling sessions"
	stageClustering = "clustering pooled matrix"
	stageScoring    = "scoring metastate series"
)

// clusterFunc is the seam to the clustering capability; tests substitute
// a spy here to prove validation precedes clustering.
var clusterFunc = func(pooled mat.Matrix, opts ...kmeans.Option) (kmeans.Result, error) {
	return kmeans.Cluster(pooled, opts...)
}

// Complexity computes one metastate-complexity score per session, in
// input order.
//
// Contracts:
//   - Every session matrix has >= 2 rows and the same column count >= 2.
//   - Clustering sees the pooled matrix exactly once; states are therefore
//     comparable across sessions.
//   - Duplicate session names are legal but reported as a warning through
//     the Progress callback, since downstream keyed storage would collide.
//
// Errors: ErrNoSessions, ErrNilData, ErrTooFewRows, ErrFeatureMismatch,
// ErrNonFinite (all before clustering), kmeans.ErrEmptyCluster,
// ErrGroupingInconsistent. No local recovery: each failure means the
// statistical premise of the method is violated for this input.
//
// Complexity: clustering dominates — O(R·I·n·K·p); everything else is
// O(n·p + Σ nᵢ²) for the per-session LZ76 scans.
func Complexity(sessions []Session, opts ...Option) ([]Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	progress := o.Progress
	if progress == nil {
		progress = func(string) {}
	}

	// Stage 1+2: shape validation, centering, pooling.
	progress(stagePooling)
	segs, rows, cols, err := buildSegments(sessions)
	if err != nil {
		return nil, err
	}
	warnDuplicateNames(segs, progress)
	pooled := centerAndPool(sessions, segs, rows, cols)

	// Stage 3: finite-ness gate — clustering must never see NaN/Inf.
	if err = validateFinite(pooled); err != nil {
		return nil, err
	}

	// Stage 4: one clustering call over all sessions together.
	progress(stageClustering)
	cres, err := clusterFunc(pooled,
		kmeans.WithK(NumStates),
		kmeans.WithReplicates(o.Replicates),
		kmeans.WithMaxIterations(o.MaxIterations),
		kmeans.WithSeed(o.Seed),
		kmeans.WithParallel(o.Parallel),
	)
	if err != nil {
		return nil, err
	}

	// Stage 5: collapse the four states into two metastates.
	grouping, err := GroupStates(cres.Centroids)
	if err != nil {
		return nil, err
	}
	series, err := grouping.Apply(cres.Labels)
	if err != nil {
		return nil, err
	}

	// Stage 6: re-segment and score each session.
	progress(stageScoring)
	parts := resegment(series, segs)
	lzOpts := lz76.DefaultOptions()
	results := make([]Result, len(sessions))
	for i, part := range parts {
		score, serr := lz76.Complexity(part, &lzOpts)
		if serr != nil {
			return nil, fmt.Errorf("session %q: %w", segs[i].name, serr)
		}
		results[i] = Result{Name: segs[i].name, Score: score, Labels: part}
		if o.KeepData {
			results[i].Data = sessions[i].Data
		}
	}

	return results, nil
}

// ComplexityMatrix scores a single observation matrix, treating it as one
// anonymous session. Convenience wrapper over Complexity.
func ComplexityMatrix(m *mat.Dense, opts ...Option) (Result, error) {
	results, err := Complexity([]Session{{Data: m}}, opts...)
	if err != nil {
		return Result{}, err
	}
	return results[0], nil
}

// warnDuplicateNames emits a non-fatal warning for every session name that
// already appeared earlier in the list.
func warnDuplicateNames(segs []segment, progress func(string)) {
	seen := make(map[string]struct{}, len(segs))
	for _, sg := range segs {
		if _, ok := seen[sg.name]; ok {
			progress(fmt.Sprintf("warning: duplicate session name %q", sg.name))
			continue
		}
		seen[sg.name] = struct{}{}
	}
}
