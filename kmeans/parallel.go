// Package kmeans - replicate fan-out/fan-in.
//
// Replicates are embarrassingly parallel: each owns its RNG stream and
// writes only its own slot of the outcome slice, so the fan-out needs no
// locks. Selection after the join is a deterministic scan, which keeps
// the winner independent of scheduling.
package kmeans

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// runReplicates executes all restarts (sequentially or across workers) and
// selects the lowest-cost successful outcome; ties resolve to the lowest
// replicate index. If every replicate fails the K-non-empty contract, the
// first failure is surfaced wrapped in ErrEmptyCluster semantics.
//
// Complexity: O(R·I·n·K·p) total work regardless of Parallel.
func runReplicates(rows [][]float64, o Options) (replicateOutcome, int, error) {
	outs := make([]replicateOutcome, o.Replicates)

	if o.Parallel && o.Workers > 1 && o.Replicates > 1 {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for r := 0; r < o.Replicates; r++ {
			r := r
			g.Go(func() error {
				outs[r] = runReplicate(rows, o.K, o.MaxIterations, o.Tolerance, replicateRNG(o.Seed, r))
				return nil
			})
		}
		// Replicates report failures through their outcome slot, never
		// through the group; Wait is only the barrier.
		if err := g.Wait(); err != nil {
			return replicateOutcome{}, 0, err
		}
	} else {
		for r := 0; r < o.Replicates; r++ {
			outs[r] = runReplicate(rows, o.K, o.MaxIterations, o.Tolerance, replicateRNG(o.Seed, r))
		}
	}

	best := -1
	for r := range outs {
		if outs[r].err != nil {
			continue
		}
		if best == -1 || outs[r].cost < outs[best].cost {
			best = r
		}
	}
	if best == -1 {
		return replicateOutcome{}, 0,
			fmt.Errorf("all %d replicates failed: %w", o.Replicates, outs[0].err)
	}

	return outs[best], best, nil
}
