package preslam

// SliceSeries adapts a contiguous []TimedPose, sorted by timestamp, to the
// Series interface. It supports O(1) indexing, so queries locate their
// bracketing pair by binary search.
type SliceSeries []TimedPose

// Len reports the number of samples.
func (s SliceSeries) Len() int { return len(s) }

// At returns the i-th sample.
func (s SliceSeries) At(i int) TimedPose { return s[i] }

// First returns the earliest sample.
func (s SliceSeries) First() TimedPose { return s[0] }

// Last returns the latest sample.
func (s SliceSeries) Last() TimedPose { return s[len(s)-1] }

// Cursor returns a forward iterator over the samples.
func (s SliceSeries) Cursor() Cursor {
	return &sliceCursor{samples: s, pos: -1}
}

type sliceCursor struct {
	samples []TimedPose
	pos     int
}

func (c *sliceCursor) Next() bool {
	c.pos++
	return c.pos < len(c.samples)
}

func (c *sliceCursor) Sample() TimedPose { return c.samples[c.pos] }
