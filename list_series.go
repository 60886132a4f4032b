package preslam

import "container/list"

// ListSeries stores samples in a doubly linked list. It exists for callers
// that accumulate samples with cheap appends and never need indexing;
// queries fall back to a forward scan, O(n) per lookup.
//
// Append order is iteration order, so samples must be appended with
// non-decreasing timestamps.
type ListSeries struct {
	l list.List
}

// NewListSeries builds a linked series from samples already in timestamp
// order.
func NewListSeries(samples ...TimedPose) *ListSeries {
	s := &ListSeries{}
	for _, tp := range samples {
		s.Append(tp)
	}
	return s
}

// Append adds a sample at the end of the series. The caller guarantees the
// timestamp is not below the current last timestamp.
func (s *ListSeries) Append(tp TimedPose) {
	s.l.PushBack(tp)
}

// Len reports the number of samples.
func (s *ListSeries) Len() int { return s.l.Len() }

// First returns the earliest sample.
func (s *ListSeries) First() TimedPose {
	return s.l.Front().Value.(TimedPose)
}

// Last returns the latest sample.
func (s *ListSeries) Last() TimedPose {
	return s.l.Back().Value.(TimedPose)
}

// Cursor returns a forward iterator over the samples.
func (s *ListSeries) Cursor() Cursor {
	return &listCursor{next: s.l.Front()}
}

type listCursor struct {
	next *list.Element
	cur  *list.Element
}

func (c *listCursor) Next() bool {
	if c.next == nil {
		return false
	}
	c.cur = c.next
	c.next = c.next.Next()
	return true
}

func (c *listCursor) Sample() TimedPose { return c.cur.Value.(TimedPose) }
