package metastate_test

import (
	"math"
	"testing"

	"github.com/neurolab/brainstates/metastate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// constSession builds an n×p session whose every entry is base+j for
// column j, so column means are exact and centering is fully predictable.
func constSession(name string, n, p int, base float64) metastate.Session {
	d := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			d.Set(i, j, base+float64(j))
		}
	}
	return metastate.Session{Name: name, Data: d}
}

// TestBuildSegments_OffsetTable verifies the offset table for an
// arbitrary mix of session lengths: cumulative starts, exact lengths,
// preserved order and names.
func TestBuildSegments_OffsetTable(t *testing.T) {
	lengths := []int{3, 5, 2, 7}
	sessions := make([]metastate.Session, len(lengths))
	for i, n := range lengths {
		sessions[i] = constSession(string(rune('a'+i)), n, 3, float64(i))
	}

	segs, rows, cols, err := metastate.BuildSegments_TestOnly(sessions)
	require.NoError(t, err)
	assert.Equal(t, 17, rows)
	assert.Equal(t, 3, cols)

	start := 0
	for i, n := range lengths {
		assert.Equal(t, start, segs[i].Start, "segment %d start", i)
		assert.Equal(t, n, segs[i].Length, "segment %d length", i)
		assert.Equal(t, sessions[i].Name, segs[i].Name, "segment %d name", i)
		start += n
	}
}

// TestBuildSegments_Errors covers each shape sentinel.
func TestBuildSegments_Errors(t *testing.T) {
	_, _, _, err := metastate.BuildSegments_TestOnly(nil)
	assert.ErrorIs(t, err, metastate.ErrNoSessions)

	_, _, _, err = metastate.BuildSegments_TestOnly([]metastate.Session{{Name: "x"}})
	assert.ErrorIs(t, err, metastate.ErrNilData)

	_, _, _, err = metastate.BuildSegments_TestOnly([]metastate.Session{
		{Name: "x", Data: mat.NewDense(1, 3, nil)},
	})
	assert.ErrorIs(t, err, metastate.ErrTooFewRows)

	_, _, _, err = metastate.BuildSegments_TestOnly([]metastate.Session{
		constSession("a", 4, 3, 0),
		constSession("b", 4, 5, 0),
	})
	assert.ErrorIs(t, err, metastate.ErrFeatureMismatch)

	_, _, _, err = metastate.BuildSegments_TestOnly([]metastate.Session{
		{Name: "x", Data: mat.NewDense(4, 1, nil)},
	})
	assert.ErrorIs(t, err, metastate.ErrFeatureMismatch, "a single feature column is unusable")
}

// TestCenterAndPool_PerSessionMeans verifies that each session is centered
// against its OWN column means (baseline offsets vanish independently) and
// that inputs are never mutated.
func TestCenterAndPool_PerSessionMeans(t *testing.T) {
	sessions := []metastate.Session{
		constSession("low", 3, 2, 0),
		constSession("high", 4, 2, 100),
	}

	pooled, err := metastate.CenterAndPool_TestOnly(sessions)
	require.NoError(t, err)

	// Constant columns center to exactly zero, whatever the baseline.
	rows, cols := pooled.Dims()
	assert.Equal(t, 7, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, 0.0, pooled.At(i, j), "pooled[%d,%d]", i, j)
		}
	}

	// The caller's matrices are untouched.
	assert.Equal(t, 0.0, sessions[0].Data.At(0, 0))
	assert.Equal(t, 100.0, sessions[1].Data.At(0, 0))
}

// TestCenterAndPool_ColumnMeansNearZero verifies centering on non-constant
// data: every session's pooled block has column means ~0.
func TestCenterAndPool_ColumnMeansNearZero(t *testing.T) {
	d := mat.NewDense(5, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
		5, 50,
	})
	sessions := []metastate.Session{{Name: "s", Data: d}}

	pooled, err := metastate.CenterAndPool_TestOnly(sessions)
	require.NoError(t, err)

	rows, cols := pooled.Dims()
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			sum += pooled.At(i, j)
		}
		assert.InDelta(t, 0.0, sum, 1e-12, "column %d mean after centering", j)
	}
	assert.Equal(t, -2.0, pooled.At(0, 0), "1 − mean(1..5)")
	assert.Equal(t, 20.0, pooled.At(4, 1), "50 − mean(10..50)")
}

// TestValidateFinite reports NaN/Inf with its position.
func TestValidateFinite(t *testing.T) {
	m := mat.NewDense(3, 3, nil)
	require.NoError(t, metastate.ExportedValidateFinite(m))

	m.Set(1, 2, math.NaN())
	err := metastate.ExportedValidateFinite(m)
	assert.ErrorIs(t, err, metastate.ErrNonFinite)
	assert.Contains(t, err.Error(), "row 1, column 2")

	m.Set(1, 2, math.Inf(-1))
	assert.ErrorIs(t, metastate.ExportedValidateFinite(m), metastate.ErrNonFinite)
}

// TestResegment_RoundTrip is the re-segmentation property: concatenating
// and re-slicing by the offset table reproduces exactly the per-session
// label runs, in order, with nothing duplicated or dropped.
func TestResegment_RoundTrip(t *testing.T) {
	lengths := []int{1, 4, 2, 6, 3}
	segs := make([]metastate.SegmentSnapshot, len(lengths))
	start := 0
	for i, n := range lengths {
		segs[i] = metastate.SegmentSnapshot{Name: "s", Start: start, Length: n}
		start += n
	}

	// Distinguishable labels: position parity.
	labels := make([]bool, start)
	for i := range labels {
		labels[i] = i%2 == 1
	}

	parts := metastate.Resegment_TestOnly(labels, segs)
	require.Len(t, parts, len(lengths))

	flat := make([]bool, 0, start)
	for i, part := range parts {
		assert.Len(t, part, lengths[i], "segment %d length", i)
		flat = append(flat, part...)
	}
	assert.Equal(t, labels, flat, "re-sliced segments must reassemble the series")

	// Slices are copies: mutating a part must not touch the source.
	parts[1][0] = !parts[1][0]
	assert.True(t, labels[1], "source series must stay intact")
}
