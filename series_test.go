package preslam

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// collect drains a cursor into a slice.
func collect(c Cursor) []TimedPose {
	var out []TimedPose
	for c.Next() {
		out = append(out, c.Sample())
	}
	return out
}

func TestCursorOrder(t *testing.T) {
	samples := trajectorySamples()
	for name, s := range allSeries(samples) {
		t.Run(name, func(t *testing.T) {
			got := collect(s.Cursor())
			if diff := cmp.Diff(samples, got); diff != "" {
				t.Errorf("cursor order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCursorEmpty(t *testing.T) {
	for name, s := range allSeries(nil) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0, s.Len())
			assert.False(t, s.Cursor().Next())
		})
	}
}

func TestBounds(t *testing.T) {
	samples := trajectorySamples()
	for name, s := range allSeries(samples) {
		t.Run(name, func(t *testing.T) {
			first, last := bounds(s)
			assert.Equal(t, samples[0], first)
			assert.Equal(t, samples[len(samples)-1], last)
		})
	}
}

// minimalSeries strips the optional interfaces off an adapter so tests
// can exercise the scan-only paths.
type minimalSeries struct {
	samples SliceSeries
}

func (m minimalSeries) Len() int       { return m.samples.Len() }
func (m minimalSeries) Cursor() Cursor { return m.samples.Cursor() }

func TestBoundsScanFallback(t *testing.T) {
	samples := trajectorySamples()
	first, last := bounds(minimalSeries{samples: SliceSeries(samples)})
	assert.Equal(t, samples[0], first)
	assert.Equal(t, samples[len(samples)-1], last)
}

// TestPoseAtMinimalSeries checks the engine against a series that offers
// nothing beyond forward iteration.
func TestPoseAtMinimalSeries(t *testing.T) {
	samples := trajectorySamples()
	s := minimalSeries{samples: SliceSeries(samples)}

	got, err := PoseAt(s, 2)
	require.NoError(t, err)
	assert.Equal(t, samples[2], got)

	want, err := PoseAt(SliceSeries(samples), 1.75)
	require.NoError(t, err)
	got, err = PoseAt(s, 1.75)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBTreeSeriesSeek(t *testing.T) {
	s := NewBTreeSeries(trajectorySamples()...)

	tests := []struct {
		name     string
		t        float64
		wantGE   float64
		okGE     bool
		wantLT   float64
		okLT     bool
	}{
		{"Before first", -1, 0, true, 0, false},
		{"At first", 0, 0, true, 0, false},
		{"Between samples", 1.5, 2, true, 1, true},
		{"At interior sample", 2, 2, true, 1, true},
		{"At last", 4, 4, true, 3, true},
		{"After last", 5, 0, false, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ge, ok := s.SeekGE(tt.t)
			require.Equal(t, tt.okGE, ok)
			if ok {
				assert.Equal(t, tt.wantGE, ge.Time)
			}

			lt, ok := s.SeekLT(tt.t)
			require.Equal(t, tt.okLT, ok)
			if ok {
				assert.Equal(t, tt.wantLT, lt.Time)
			}
		})
	}
}

// TestBTreeSeriesReplace verifies ordered-map semantics: re-inserting a
// timestamp replaces the stored pose without growing the series.
func TestBTreeSeriesReplace(t *testing.T) {
	s := NewBTreeSeries(trajectorySamples()...)
	require.Equal(t, 5, s.Len())

	replacement := TimedPose{
		Time: 2,
		Pose: Pose{Position: r3.Vec{X: 9}, Orientation: Identity()},
	}
	s.Insert(replacement)

	assert.Equal(t, 5, s.Len())
	got, err := PoseAt(s, 2)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestListSeriesAppend(t *testing.T) {
	s := NewListSeries()
	assert.Equal(t, 0, s.Len())

	for _, tp := range trajectorySamples() {
		s.Append(tp)
	}
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 0.0, s.First().Time)
	assert.Equal(t, 4.0, s.Last().Time)
}

func TestContainsTime(t *testing.T) {
	samples := trajectorySamples()
	for name, s := range allSeries(samples) {
		t.Run(name, func(t *testing.T) {
			const eps = 1e-9

			assert.True(t, ContainsTime(s, 2, eps))
			assert.True(t, ContainsTime(s, 2+1e-10, eps))
			assert.True(t, ContainsTime(s, 2-1e-10, eps))
			assert.False(t, ContainsTime(s, 2.5, eps))
			assert.False(t, ContainsTime(s, 2+1e-8, eps))
			assert.False(t, ContainsTime(s, -1, eps))
			assert.False(t, ContainsTime(s, 5, eps))
		})
	}
}
