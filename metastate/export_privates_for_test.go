package metastate

import (
	"gonum.org/v1/gonum/mat"

	"github.com/neurolab/brainstates/kmeans"
)

// SetClusterFuncForTest swaps the clustering seam and returns a restore
// function. Test-only: lets black-box tests spy on whether (and with what)
// the clustering capability is invoked.
func SetClusterFuncForTest(fn func(mat.Matrix, ...kmeans.Option) (kmeans.Result, error)) (restore func()) {
	old := clusterFunc
	clusterFunc = fn
	return func() { clusterFunc = old }
}

// SegmentSnapshot is a test-facing copy of one offset-table entry.
type SegmentSnapshot struct {
	Name   string
	Start  int
	Length int
}

// BuildSegments_TestOnly exposes the offset-table derivation: snapshots
// of the segment table plus total row and shared column counts.
func BuildSegments_TestOnly(sessions []Session) ([]SegmentSnapshot, int, int, error) {
	segs, rows, cols, err := buildSegments(sessions)
	if err != nil {
		return nil, 0, 0, err
	}
	out := make([]SegmentSnapshot, len(segs))
	for i, sg := range segs {
		out[i] = SegmentSnapshot{Name: sg.name, Start: sg.start, Length: sg.length}
	}
	return out, rows, cols, nil
}

// CenterAndPool_TestOnly builds the offset table and returns the centered,
// pooled matrix.
func CenterAndPool_TestOnly(sessions []Session) (*mat.Dense, error) {
	segs, rows, cols, err := buildSegments(sessions)
	if err != nil {
		return nil, err
	}
	return centerAndPool(sessions, segs, rows, cols), nil
}

// ExportedValidateFinite aliases the pooled-matrix finiteness scan.
var ExportedValidateFinite = validateFinite

// Resegment_TestOnly re-slices a pooled label series by a snapshot table.
func Resegment_TestOnly(labels []bool, segs []SegmentSnapshot) [][]bool {
	internal := make([]segment, len(segs))
	for i, sg := range segs {
		internal[i] = segment{name: sg.Name, start: sg.Start, length: sg.Length}
	}
	return resegment(labels, internal)
}
