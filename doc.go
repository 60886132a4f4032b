// Package preslam provides time-indexed 6-DOF pose interpolation for SLAM
// front-end preprocessing.
//
// Given a temporally ordered set of poses (position + orientation), the
// package computes a continuously varying pose estimate at any query time
// within the recorded span. Positions are interpolated linearly and
// orientations are interpolated with SLERP, including shortest-arc
// correction and a numerically stable fallback for near-parallel rotations.
//
// # Quick Start
//
// For a one-shot query with default settings:
//
//	series := preslam.SliceSeries{
//	    {Time: 0, Pose: p0},
//	    {Time: 1, Pose: p1},
//	}
//	tp, err := preslam.PoseAt(series, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated queries with custom settings, build an Interpolator:
//
//	ip, err := preslam.New(&preslam.Config{
//	    MatchEpsilon: 1e-9,
//	    Parallel:     true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	poses, err := ip.PoseAtTimes(series, queryTimes)
//
// # Series Representations
//
// Queries run against the [Series] interface, so the same engine works over
// different sample layouts. Three adapters are provided:
//
//   - [SliceSeries]: contiguous samples with O(1) indexing. Neighbor lookup
//     uses binary search, O(log n) per query.
//   - [ListSeries]: linked samples with forward iteration only. Lookup
//     degrades gracefully to a linear scan.
//   - [BTreeSeries]: samples keyed by timestamp in a B-tree. Lookup seeks
//     directly to the bracketing pair, O(log n) per query.
//
// Custom series types only need Len and Cursor; implementing the optional
// [Indexed], [Bounded], or [Seeker] interfaces lets the engine exploit
// faster access paths when they exist.
//
// Every series must present samples in non-decreasing timestamp order. The
// engine does not verify the full ordering (that would cost O(n) per query);
// callers own that invariant.
//
// # Query Semantics
//
// A query time equal to a stored sample's timestamp returns that sample
// unmodified, with no interpolation arithmetic applied. By default the
// comparison is exact floating-point equality; Config.MatchEpsilon widens it
// to a tolerance band. Query times outside [first, last] fail with
// [ErrOutOfRange], and an empty series fails with [ErrEmptySeries].
//
// # Geometry
//
// Positions use r3.Vec from gonum's spatial/r3 package. Orientations use the
// package's [Quaternion] type; [Slerp] assumes (but does not require)
// unit-norm inputs and always interpolates along the shorter arc between the
// two rotations.
//
// # Thread Safety
//
// Every query is a pure function of its inputs. Concurrent queries against
// the same series are safe as long as the series itself is not mutated; the
// engine only reads.
//
// # Related Packages
//
// The solver subpackage wraps gonum/mat dense decompositions behind a
// uniform solve(A, b) interface for the linear systems that show up around
// pose estimation.
package preslam
