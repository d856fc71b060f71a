// Package kmeans - configuration options, sentinel errors and result types.
package kmeans

import (
	"errors"
	"runtime"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Cluster.
var (
	// ErrNilMatrix indicates that a nil observation matrix was passed.
	ErrNilMatrix = errors.New("kmeans: observation matrix is nil")

	// ErrTooFewRows indicates fewer observations than requested clusters.
	ErrTooFewRows = errors.New("kmeans: need at least K observation rows")

	// ErrTooFewColumns indicates fewer than two features per observation;
	// Pearson correlation is undefined on a single feature.
	ErrTooFewColumns = errors.New("kmeans: need at least 2 feature columns")

	// ErrNonFinite indicates NaN or Inf contamination in the observations.
	// It is raised before any clustering work begins.
	ErrNonFinite = errors.New("kmeans: observation matrix contains NaN or Inf")

	// ErrEmptyCluster indicates that no replicate converged to K non-empty
	// clusters. The caller must treat this as fatal; a partial partition is
	// never returned.
	ErrEmptyCluster = errors.New("kmeans: clustering produced an empty cluster")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultK is the number of clusters.
	DefaultK = 4

	// DefaultReplicates is the number of independent random restarts.
	DefaultReplicates = 200

	// DefaultMaxIterations caps the Lloyd iterations of one replicate.
	DefaultMaxIterations = 1000

	// DefaultTolerance is the centroid-drift threshold below which a
	// replicate is considered converged (Euclidean drift per centroid).
	DefaultTolerance = 1e-9

	// DefaultSeed selects the fixed default RNG stream (seed 0 policy:
	// deterministic by default; pass any other value for a different run).
	DefaultSeed int64 = 0

	// DefaultParallel runs replicates across workers when true.
	DefaultParallel = true
)

// Internal panic messages for option constructors (programmer error only).
const (
	panicBadK          = "kmeans: WithK: k must be >= 2"
	panicBadReplicates = "kmeans: WithReplicates: count must be >= 1"
	panicBadIterations = "kmeans: WithMaxIterations: cap must be >= 1"
	panicBadTolerance  = "kmeans: WithTolerance: tolerance must be >= 0"
	panicBadWorkers    = "kmeans: WithWorkers: count must be >= 1"
)

// Options configures Cluster.
//
// K             – number of clusters.
// Replicates    – independent random restarts; the lowest-cost one wins.
// MaxIterations – Lloyd iteration cap per replicate.
// Tolerance     – centroid-drift convergence threshold (Euclidean, >= 0).
// Seed          – RNG seed; 0 selects the fixed default stream, so runs
//
//	are reproducible unless the caller supplies entropy.
//
// Parallel      – fan replicates out across Workers goroutines.
// Workers       – parallel width; defaults to GOMAXPROCS.
type Options struct {
	K             int
	Replicates    int
	MaxIterations int
	Tolerance     float64
	Seed          int64
	Parallel      bool
	Workers       int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		K:             DefaultK,
		Replicates:    DefaultReplicates,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Seed:          DefaultSeed,
		Parallel:      DefaultParallel,
		Workers:       runtime.GOMAXPROCS(0),
	}
}

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error); data-dependent problems surface as sentinel errors.
type Option func(*Options)

// WithK sets the cluster count. Panics if k < 2.
func WithK(k int) Option {
	if k < 2 {
		panic(panicBadK)
	}
	return func(o *Options) { o.K = k }
}

// WithReplicates sets the number of independent restarts. Panics if n < 1.
func WithReplicates(n int) Option {
	if n < 1 {
		panic(panicBadReplicates)
	}
	return func(o *Options) { o.Replicates = n }
}

// WithMaxIterations caps the Lloyd iterations per replicate. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicBadIterations)
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the centroid-drift convergence threshold.
// Panics if tol < 0.
func WithTolerance(tol float64) Option {
	if tol < 0 {
		panic(panicBadTolerance)
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithSeed sets the RNG seed. Seed 0 keeps the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithParallel toggles the parallel replicate fan-out. The selected
// solution is identical either way; only wall-clock time changes.
func WithParallel(parallel bool) Option {
	return func(o *Options) { o.Parallel = parallel }
}

// WithWorkers bounds the parallel width. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}
	return func(o *Options) { o.Workers = n }
}

// Result holds the winning replicate's solution.
type Result struct {
	// Labels assigns each observation row a cluster label in 1..K.
	Labels []int

	// Centroids is the K×p matrix of cluster means (row k-1 = cluster k).
	Centroids *mat.Dense

	// Cost is the total within-cluster one-minus-correlation distance.
	Cost float64

	// Replicate is the index (0-based) of the winning restart.
	Replicate int

	// Iterations is the number of Lloyd iterations the winner ran.
	Iterations int
}
