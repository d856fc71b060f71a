// Package metastate turns multi-session brain-activity matrices into one
// complexity score per session by clustering pooled timepoints into four
// recurring states, collapsing those states into two opposing metastates,
// and scoring each session's binary occupancy series with LZ76.
//
// 🚀 What is a metastate?
//
//	Clustered activity patterns come in anti-correlated pairs: when one
//	spatial pattern is active, its mirror is suppressed.  The grouping
//	rule pairs each cluster centroid with its most anti-correlated
//	partner, demands that the pairing be mutual, and fuses the four
//	states into two opposing macro-states — metastate A and metastate B.
//	How unpredictably a brain hops between the two is what the LZ76
//	score measures.
//
// Pipeline stages (Complexity):
//  1. Mean-center every session's matrix independently (column-wise),
//     removing per-session baseline offsets before pooling.
//  2. Stack the centered matrices row-wise; record an immutable
//     (name, start, length) segment table for later re-slicing.
//  3. Validate: NaN/Inf in the pooled matrix is fatal before clustering.
//  4. Cluster the pooled matrix ONCE (never per session) so state
//     identities are comparable across sessions.
//  5. Group the four centroids into two metastates (GroupStates).
//  6. Re-slice the pooled boolean series by the segment table and score
//     each session with lz76.Complexity.
//
// Errors (sentinel):
//
//	– ErrNoSessions           if the session list is empty.
//	– ErrNilData              if a session carries a nil matrix.
//	– ErrTooFewRows           if a session has fewer than 2 timepoints.
//	– ErrFeatureMismatch      if sessions disagree on the column count.
//	– ErrNonFinite            if the pooled matrix contains NaN or Inf.
//	– ErrBadCentroids         if GroupStates receives a non-4×p matrix.
//	– ErrBadLabel             if a cluster label is outside 1..4.
//	– ErrGroupingInconsistent if the anti-correlation pairing is not
//	                          mutual — the two-lobe premise fails for
//	                          this data; never coerced into a best guess.
//
// ⚙️ Usage:
//
//	import "github.com/neurolab/brainstates/metastate"
//
//	results, err := metastate.Complexity(
//	    []metastate.Session{
//	        {Name: "subj01-run1", Data: run1},
//	        {Name: "subj01-run2", Data: run2},
//	    },
//	    metastate.WithSeed(42),
//	    metastate.WithProgress(func(stage string) { log.Println(stage) }),
//	)
//
// The number of clustered states is fixed at NumStates (4): the grouping
// rule's 2+2 partition is defined only there, so K is a constant, not an
// option.
package metastate
