package preslam

// Cursor walks a series of timed poses in timestamp order.
type Cursor interface {
	// Next advances to the next sample, returning false when the series
	// is exhausted. It must be called before the first Sample.
	Next() bool

	// Sample returns the sample at the current position.
	Sample() TimedPose
}

// Series is read-only, time-ordered access to pose samples. Timestamps
// must be non-decreasing in cursor order; the engine relies on this
// invariant without verifying it exhaustively. The engine never mutates or
// retains a series beyond a call.
//
// Len and Cursor are the whole contract. Series that can do better than a
// forward scan should also implement Indexed, Bounded, or Seeker; the
// engine detects these and picks the cheapest lookup path available.
type Series interface {
	// Len reports the number of samples.
	Len() int

	// Cursor returns an iterator positioned before the first sample.
	Cursor() Cursor
}

// Indexed is implemented by series with O(1) positional access. It lets
// the neighbor search run as an O(log n) binary search instead of an O(n)
// scan.
type Indexed interface {
	// At returns the i-th sample in timestamp order.
	At(i int) TimedPose
}

// Bounded is implemented by series that expose their first and last
// samples in O(1). Both methods may assume the series is non-empty; the
// engine checks Len first.
type Bounded interface {
	First() TimedPose
	Last() TimedPose
}

// Seeker is implemented by series that can locate samples around a time
// directly, such as tree-backed series.
type Seeker interface {
	// SeekGE returns the first sample with Time >= t, if any.
	SeekGE(t float64) (TimedPose, bool)

	// SeekLT returns the last sample with Time < t, if any.
	SeekLT(t float64) (TimedPose, bool)
}

// bounds returns the first and last samples of a non-empty series, in O(1)
// where the series allows it.
func bounds(s Series) (first, last TimedPose) {
	if b, ok := s.(Bounded); ok {
		return b.First(), b.Last()
	}
	if ix, ok := s.(Indexed); ok {
		return ix.At(0), ix.At(s.Len() - 1)
	}
	c := s.Cursor()
	started := false
	for c.Next() {
		if !started {
			first = c.Sample()
			started = true
		}
		last = c.Sample()
	}
	return first, last
}

// ContainsTime reports whether some sample timestamp lies within eps of t.
// This is a membership test for display and diagnostics; PoseAt's own
// exact-match handling is governed by Config.MatchEpsilon instead.
func ContainsTime(s Series, t, eps float64) bool {
	if sk, ok := s.(Seeker); ok {
		if tp, ok := sk.SeekGE(t - eps); ok && tp.Time <= t+eps {
			return true
		}
		return false
	}
	c := s.Cursor()
	for c.Next() {
		ts := c.Sample().Time
		if ts > t+eps {
			return false
		}
		if ts >= t-eps {
			return true
		}
	}
	return false
}
