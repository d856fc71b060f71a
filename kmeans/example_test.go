package kmeans_test

import (
	"fmt"
	"math/rand"

	"github.com/neurolab/brainstates/kmeans"
	"gonum.org/v1/gonum/mat"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCluster
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Twenty observations drawn from two anti-correlated spatial patterns,
//	clustered with K=2 and a handful of replicates.
//
// Options:
//   - WithK(2)          (two clusters)
//   - WithReplicates(4) (four random restarts; lowest cost wins)
//   - WithSeed(1)       (fully reproducible run)
//
// Use case:
//
//	Recovering recurring activity patterns before metastate grouping.
//
// Complexity: O(R·I·n·K·p) time
func ExampleCluster() {
	pattern := []float64{1, 1, -1, -1}
	rng := rand.New(rand.NewSource(1))

	obs := mat.NewDense(20, 4, nil)
	for i := 0; i < 20; i++ {
		sign := 1.0
		if i%2 == 1 {
			sign = -1.0
		}
		for j := 0; j < 4; j++ {
			obs.Set(i, j, sign*pattern[j]+0.01*rng.NormFloat64())
		}
	}

	res, err := kmeans.Cluster(obs,
		kmeans.WithK(2),
		kmeans.WithReplicates(4),
		kmeans.WithSeed(1),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	r, c := res.Centroids.Dims()
	fmt.Printf("labels=%d centroids=%dx%d\n", len(res.Labels), r, c)
	fmt.Printf("distinct=%v\n", res.Labels[0] != res.Labels[1])
	// Output:
	// labels=20 centroids=2x4
	// distinct=true
}
