package metastate_test

import (
	"fmt"
	"math/rand"

	"github.com/neurolab/brainstates/metastate"
	"gonum.org/v1/gonum/mat"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleComplexity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two sessions of one subject, 100 and 150 timepoints over 8 regions.
//	Each timepoint is one of four recurring spatial patterns (two
//	anti-correlated pairs) plus noise; the second session carries a
//	baseline offset that per-session centering removes.
//
// Options:
//   - WithReplicates(8) (few restarts; the demo data is well separated)
//   - WithSeed(42)      (fully reproducible run)
//
// Use case:
//
//	One metastate-complexity score per scan, comparable across scans.
//
// Complexity: clustering dominates — O(R·I·n·K·p)
func ExampleComplexity() {
	patterns := [4][]float64{
		{1, 1, 1, 1, -1, -1, -1, -1},
		{1, -1, 1, -1, 1, -1, 1, -1},
		{-1, -1, -1, -1, 1, 1, 1, 1},
		{-1, 1, -1, 1, -1, 1, -1, 1},
	}
	build := func(n int, baseline float64, seed int64) *mat.Dense {
		rng := rand.New(rand.NewSource(seed))
		d := mat.NewDense(n, 8, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < 8; j++ {
				d.Set(i, j, baseline+patterns[i%4][j]+0.05*rng.NormFloat64())
			}
		}
		return d
	}

	results, err := metastate.Complexity(
		[]metastate.Session{
			{Name: "run1", Data: build(100, 0, 1)},
			{Name: "run2", Data: build(150, 5, 2)},
		},
		metastate.WithReplicates(8),
		metastate.WithSeed(42),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range results {
		fmt.Printf("%s: %d timepoints, finite score: %v\n",
			r.Name, len(r.Labels), r.Score >= 0)
	}
	// Output:
	// run1: 100 timepoints, finite score: true
	// run2: 150 timepoints, finite score: true
}
