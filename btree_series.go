package preslam

import "github.com/google/btree"

// BTreeSeries stores samples in a B-tree keyed by timestamp. Insertion
// keeps the series ordered regardless of arrival order, and queries seek
// directly to the bracketing pair in O(log n).
//
// Timestamps are unique keys: inserting a sample with an existing
// timestamp replaces the stored pose, matching ordered-map semantics.
type BTreeSeries struct {
	tree *btree.BTreeG[TimedPose]
}

// NewBTreeSeries builds a tree-backed series from the given samples.
func NewBTreeSeries(samples ...TimedPose) *BTreeSeries {
	s := &BTreeSeries{
		tree: btree.NewG(btreeDegree, func(a, b TimedPose) bool {
			return a.Time < b.Time
		}),
	}
	for _, tp := range samples {
		s.Insert(tp)
	}
	return s
}

// Insert adds a sample, replacing any sample already stored at the same
// timestamp.
func (s *BTreeSeries) Insert(tp TimedPose) {
	s.tree.ReplaceOrInsert(tp)
}

// Len reports the number of samples.
func (s *BTreeSeries) Len() int { return s.tree.Len() }

// First returns the earliest sample.
func (s *BTreeSeries) First() TimedPose {
	tp, _ := s.tree.Min()
	return tp
}

// Last returns the latest sample.
func (s *BTreeSeries) Last() TimedPose {
	tp, _ := s.tree.Max()
	return tp
}

// SeekGE returns the first sample with Time >= t, if any.
func (s *BTreeSeries) SeekGE(t float64) (TimedPose, bool) {
	var found TimedPose
	ok := false
	s.tree.AscendGreaterOrEqual(TimedPose{Time: t}, func(tp TimedPose) bool {
		found, ok = tp, true
		return false
	})
	return found, ok
}

// SeekLT returns the last sample with Time < t, if any.
func (s *BTreeSeries) SeekLT(t float64) (TimedPose, bool) {
	var found TimedPose
	ok := false
	s.tree.DescendLessOrEqual(TimedPose{Time: t}, func(tp TimedPose) bool {
		if tp.Time >= t {
			return true // skip the exact key, we want strictly less
		}
		found, ok = tp, true
		return false
	})
	return found, ok
}

// Cursor returns a forward iterator over the samples.
func (s *BTreeSeries) Cursor() Cursor {
	return &btreeCursor{tree: s.tree}
}

// btreeCursor steps through the tree by reseeking from the current key.
// Each step costs O(log n); timestamps are unique, so seeking past the
// current key cannot skip samples.
type btreeCursor struct {
	tree    *btree.BTreeG[TimedPose]
	cur     TimedPose
	started bool
}

func (c *btreeCursor) Next() bool {
	if !c.started {
		tp, ok := c.tree.Min()
		if !ok {
			return false
		}
		c.cur = tp
		c.started = true
		return true
	}
	advanced := false
	c.tree.AscendGreaterOrEqual(c.cur, func(tp TimedPose) bool {
		if tp.Time <= c.cur.Time {
			return true
		}
		c.cur = tp
		advanced = true
		return false
	})
	return advanced
}

func (c *btreeCursor) Sample() TimedPose { return c.cur }
