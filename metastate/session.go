// Package metastate - session bookkeeping: shape validation, per-session
// mean-centering, pooling with an explicit offset table, and pure
// re-segmentation.
//
// Design principles:
//   - The segment table is computed once, up front, and never mutated;
//     re-segmentation is a pure function over it.
//   - Validation is fail-fast and sentinel-only; no partial pooling ever
//     reaches the clustering stage.
package metastate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// segment records one session's slice of the pooled matrix.
type segment struct {
	name   string
	start  int // first pooled-row index
	length int // number of timepoint rows
}

// buildSegments validates every session's shape and derives the immutable
// offset table. Returns the table, total row count and shared column count.
//
// Errors: ErrNoSessions, ErrNilData, ErrTooFewRows, ErrFeatureMismatch
// (each wrapped with the offending session's name).
//
// Complexity: O(S) time, O(S) space for S sessions.
func buildSegments(sessions []Session) ([]segment, int, int, error) {
	if len(sessions) == 0 {
		return nil, 0, 0, ErrNoSessions
	}

	segs := make([]segment, len(sessions))
	rows, cols := 0, 0
	for i, s := range sessions {
		if s.Data == nil {
			return nil, 0, 0, fmt.Errorf("%w: session %q", ErrNilData, s.Name)
		}
		n, p := s.Data.Dims()
		if n < 2 {
			return nil, 0, 0, fmt.Errorf("%w: session %q has %d", ErrTooFewRows, s.Name, n)
		}
		if p < 2 {
			return nil, 0, 0, fmt.Errorf("%w: session %q has %d columns", ErrFeatureMismatch, s.Name, p)
		}
		if i == 0 {
			cols = p
		} else if p != cols {
			return nil, 0, 0, fmt.Errorf("%w: session %q has %d, want %d",
				ErrFeatureMismatch, s.Name, p, cols)
		}
		segs[i] = segment{name: s.Name, start: rows, length: n}
		rows += n
	}

	return segs, rows, cols, nil
}

// centerAndPool subtracts each session's column means from its own rows
// (independently per session) and stacks the centered matrices row-wise
// into one pooled matrix in session order. Inputs are never mutated.
//
// Complexity: O(rows·cols) time and space.
func centerAndPool(sessions []Session, segs []segment, rows, cols int) *mat.Dense {
	pooled := mat.NewDense(rows, cols, nil)
	for si, s := range sessions {
		n := segs[si].length
		for j := 0; j < cols; j++ {
			col := mat.Col(nil, j, s.Data)
			mean := stat.Mean(col, nil)
			for i := 0; i < n; i++ {
				pooled.Set(segs[si].start+i, j, col[i]-mean)
			}
		}
	}
	return pooled
}

// validateFinite scans the pooled matrix for NaN/Inf. Any hit is fatal
// and reported with its position, before any clustering work begins.
//
// Complexity: O(rows·cols).
func validateFinite(pooled *mat.Dense) error {
	rows, cols := pooled.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := pooled.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: row %d, column %d", ErrNonFinite, i, j)
			}
		}
	}
	return nil
}

// resegment slices the pooled label series back into per-session series
// according to the segment table. Pure: the i-th slice is an independent
// copy of exactly segs[i].length labels, in original session order.
//
// Complexity: O(rows).
func resegment(labels []bool, segs []segment) [][]bool {
	out := make([][]bool, len(segs))
	for i, sg := range segs {
		part := make([]bool, sg.length)
		copy(part, labels[sg.start:sg.start+sg.length])
		out[i] = part
	}
	return out
}
