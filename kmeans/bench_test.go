package kmeans_test

import (
	"math/rand"
	"testing"

	"github.com/neurolab/brainstates/kmeans"
	"gonum.org/v1/gonum/mat"
)

// benchmarkCluster runs Cluster on n rows of p features cycling through
// four synthetic patterns, with the given replicate count and parallelism.
func benchmarkCluster(b *testing.B, n, p, replicates int, parallel bool) {
	rng := rand.New(rand.NewSource(1))
	obs := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		base := statePatterns[i%4]
		for j := 0; j < p; j++ {
			obs.Set(i, j, base[j%len(base)]+0.05*rng.NormFloat64())
		}
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := kmeans.Cluster(obs,
			kmeans.WithK(4),
			kmeans.WithReplicates(replicates),
			kmeans.WithSeed(1),
			kmeans.WithParallel(parallel),
		)
		if err != nil {
			b.Fatalf("Cluster failed: %v", err)
		}
	}
}

// BenchmarkCluster_SequentialSmall benchmarks 200×8 with 8 sequential replicates.
func BenchmarkCluster_SequentialSmall(b *testing.B) {
	benchmarkCluster(b, 200, 8, 8, false)
}

// BenchmarkCluster_ParallelSmall benchmarks the same load across workers.
func BenchmarkCluster_ParallelSmall(b *testing.B) {
	benchmarkCluster(b, 200, 8, 8, true)
}

// BenchmarkCluster_SequentialMedium benchmarks 1000×16 with 16 replicates.
func BenchmarkCluster_SequentialMedium(b *testing.B) {
	benchmarkCluster(b, 1000, 16, 16, false)
}

// BenchmarkCluster_ParallelMedium benchmarks the same load across workers.
func BenchmarkCluster_ParallelMedium(b *testing.B) {
	benchmarkCluster(b, 1000, 16, 16, true)
}
