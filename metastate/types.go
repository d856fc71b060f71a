// Package metastate - session/result types, configuration options and
// sentinel errors for the metastate complexity pipeline.
package metastate

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// NumStates is the fixed number of clustered states. The grouping rule's
// mutual anti-correlation pairing partitions exactly four states into two
// opposing pairs, so this is a constant of the method, not an option.
const NumStates = 4

// Sentinel errors returned by the pipeline and the grouping rule.
var (
	// ErrNoSessions indicates an empty session list.
	ErrNoSessions = errors.New("metastate: no sessions provided")

	// ErrNilData indicates a session carrying a nil observation matrix.
	ErrNilData = errors.New("metastate: session data matrix is nil")

	// ErrTooFewRows indicates a session with fewer than 2 timepoints;
	// column means and correlations are meaningless below that.
	ErrTooFewRows = errors.New("metastate: session needs at least 2 timepoint rows")

	// ErrFeatureMismatch indicates sessions disagreeing on the feature
	// (column) count; pooling requires one shared feature space.
	ErrFeatureMismatch = errors.New("metastate: sessions disagree on feature count")

	// ErrNonFinite indicates NaN/Inf contamination in the pooled matrix.
	// Raised before clustering is invoked.
	ErrNonFinite = errors.New("metastate: pooled matrix contains NaN or Inf")

	// ErrBadCentroids indicates a centroid matrix that is not NumStates×p
	// with p >= 2.
	ErrBadCentroids = errors.New("metastate: centroid matrix must be 4×p with p >= 2")

	// ErrBadLabel indicates a cluster label outside 1..NumStates.
	ErrBadLabel = errors.New("metastate: cluster label out of range 1..4")

	// ErrGroupingInconsistent indicates that the anti-correlation pairing
	// is not mutual: the clustering solution lacks the expected two-lobe
	// structure. Fatal — the partition is never coerced into a best guess.
	ErrGroupingInconsistent = errors.New("metastate: anti-correlation pairing is not mutual")
)

// Metastate identifies one of the two opposing macro-states.
type Metastate uint8

const (
	// MetastateA is the group seeded by cluster 1 and its anti-correlate.
	MetastateA Metastate = iota

	// MetastateB is the complementary group.
	MetastateB
)

// String implements fmt.Stringer.
func (m Metastate) String() string {
	if m == MetastateB {
		return "B"
	}
	return "A"
}

// Session is one contiguous recording: an n×p matrix of n timepoints over
// p features (regions). All sessions in one call share p; n may differ.
type Session struct {
	Name string     // caller-chosen identifier, preserved in the result
	Data *mat.Dense // n×p observations; never mutated by the pipeline
}

// Result is one session's outcome, in input order.
type Result struct {
	// Name echoes the session identifier.
	Name string

	// Score is the normalized LZ76 complexity of the session's
	// metastate occupancy series.
	Score float64

	// Labels is the per-timepoint occupancy series
	// (true = MetastateB, false = MetastateA).
	Labels []bool

	// Data is the caller's original matrix, attached only when KeepData
	// is enabled (the default); nil otherwise.
	Data *mat.Dense
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultKeepData attaches the input matrices to the results.
	DefaultKeepData = true

	// DefaultParallel lets the clustering stage fan replicates out.
	DefaultParallel = true

	// DefaultReplicates is the clustering restart count.
	DefaultReplicates = 200

	// DefaultMaxIterations caps each restart's Lloyd iterations.
	DefaultMaxIterations = 1000

	// DefaultSeed selects the fixed default RNG stream.
	DefaultSeed int64 = 0
)

// Internal panic messages for option constructors (programmer error only).
const (
	panicBadReplicates = "metastate: WithReplicates: count must be >= 1"
	panicBadIterations = "metastate: WithMaxIterations: cap must be >= 1"
)

// Options configures the pipeline.
//
// KeepData      – attach each session's original matrix to its Result.
// Parallel      – allow the clustering stage to run replicates in parallel
//
//	(wall-clock only; the result is identical either way).
//
// Replicates    – clustering restart count.
// MaxIterations – per-restart iteration cap.
// Seed          – RNG seed threaded to clustering; 0 = fixed default stream.
// Progress      – optional human-readable stage notifications; nil disables.
type Options struct {
	KeepData      bool
	Parallel      bool
	Replicates    int
	MaxIterations int
	Seed          int64
	Progress      func(stage string)
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		KeepData:      DefaultKeepData,
		Parallel:      DefaultParallel,
		Replicates:    DefaultReplicates,
		MaxIterations: DefaultMaxIterations,
		Seed:          DefaultSeed,
	}
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// WithKeepData toggles attaching the input matrices to the results.
func WithKeepData(keep bool) Option {
	return func(o *Options) { o.KeepData = keep }
}

// WithParallel toggles parallel clustering replicates.
func WithParallel(parallel bool) Option {
	return func(o *Options) { o.Parallel = parallel }
}

// WithReplicates sets the clustering restart count. Panics if n < 1.
func WithReplicates(n int) Option {
	if n < 1 {
		panic(panicBadReplicates)
	}
	return func(o *Options) { o.Replicates = n }
}

// WithMaxIterations caps each restart's iterations. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicBadIterations)
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithSeed sets the clustering RNG seed. Seed 0 keeps the fixed default
// stream, so runs are reproducible unless the caller supplies entropy.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithProgress registers a coarse stage-boundary callback. Observability
// only: the callback never influences control flow, and errors are always
// returned, never reported through it.
func WithProgress(fn func(stage string)) Option {
	return func(o *Options) { o.Progress = fn }
}
