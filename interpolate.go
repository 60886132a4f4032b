package preslam

import (
	"fmt"
	"math"
	"sort"
)

// Config holds interpolation engine settings. The zero value is valid and
// selects the defaults documented per field.
type Config struct {
	// MatchEpsilon is the half-width of the band around each sample
	// timestamp treated as an exact hit, returning the stored sample
	// without interpolation. Zero (the default) requires exact
	// floating-point equality.
	MatchEpsilon float64

	// MinGap is the narrowest bracket interpolated across. When the
	// bracketing samples are closer than this, the earlier sample is
	// returned unchanged instead of dividing by a near-zero gap.
	// Zero selects the default of 1e-9 seconds.
	MinGap float64

	// Parallel enables concurrent evaluation in PoseAtTimes. Single
	// queries are unaffected.
	Parallel bool

	// Workers caps the goroutines used for parallel batch evaluation.
	// Zero selects the number of CPUs.
	Workers int
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.MatchEpsilon < 0 {
		return fmt.Errorf("%w: match epsilon must be non-negative, got %v", ErrInvalidConfig, c.MatchEpsilon)
	}
	if c.MinGap < 0 {
		return fmt.Errorf("%w: min gap must be non-negative, got %v", ErrInvalidConfig, c.MinGap)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Interpolator answers pose-at-time queries against a Series. It holds no
// state beyond its configuration; every query is a pure function of the
// series and the query time, so a single Interpolator may serve concurrent
// queries.
type Interpolator struct {
	cfg Config
}

// New creates an Interpolator with the given configuration. A nil config
// selects all defaults.
func New(cfg *Config) (*Interpolator, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := *cfg
	if c.MinGap == 0 {
		c.MinGap = defaultMinGap
	}
	return &Interpolator{cfg: c}, nil
}

// defaultInterpolator backs the package-level convenience functions.
var defaultInterpolator = &Interpolator{cfg: Config{
	MatchEpsilon: defaultMatchEpsilon,
	MinGap:       defaultMinGap,
}}

// PoseAt returns the pose at time t with default settings: strict
// timestamp matching and sequential evaluation.
func PoseAt(s Series, t float64) (TimedPose, error) {
	return defaultInterpolator.PoseAt(s, t)
}

// PoseAt returns the pose at time t. A query at a stored timestamp returns
// that sample unmodified; any other in-range time returns a pose
// interpolated between the bracketing samples, stamped with t. The valid
// domain is the closed interval from the first to the last sample
// timestamp.
func (ip *Interpolator) PoseAt(s Series, t float64) (TimedPose, error) {
	if s == nil || s.Len() == 0 {
		return TimedPose{}, ErrEmptySeries
	}

	first, last := bounds(s)
	if t < first.Time || t > last.Time {
		return TimedPose{}, fmt.Errorf("%w: t=%v, samples span [%v, %v]",
			ErrOutOfRange, t, first.Time, last.Time)
	}

	prev, next, hasPrev, hasNext := bracket(s, t)

	// Exact hit: hand back the stored sample, no interpolation
	// arithmetic. With a non-zero MatchEpsilon both neighbors can fall
	// inside the band; the nearer one wins, the earlier on a tie.
	prevHit := hasPrev && ip.matches(prev.Time, t)
	nextHit := hasNext && ip.matches(next.Time, t)
	switch {
	case prevHit && nextHit:
		if t-prev.Time <= next.Time-t {
			return prev, nil
		}
		return next, nil
	case prevHit:
		return prev, nil
	case nextHit:
		return next, nil
	}

	if !hasPrev || !hasNext || prev.Time >= t || next.Time <= t {
		return TimedPose{}, fmt.Errorf("%w: no bracket around t=%v despite range [%v, %v]",
			ErrUnorderedSeries, t, first.Time, last.Time)
	}

	gap := next.Time - prev.Time
	if gap < ip.cfg.MinGap {
		// Near-coincident samples: interpolating across this gap would
		// divide by a vanishing denominator. Return the earlier sample.
		return prev, nil
	}

	frac := (t - prev.Time) / gap
	return TimedPose{
		Time: t,
		Pose: InterpolatePose(prev.Pose, next.Pose, frac),
	}, nil
}

// matches reports whether a sample timestamp counts as an exact hit for
// query time t.
func (ip *Interpolator) matches(ts, t float64) bool {
	if ip.cfg.MatchEpsilon == 0 {
		return ts == t
	}
	return math.Abs(ts-t) <= ip.cfg.MatchEpsilon
}

// bracket locates the neighbors of t: next is the first sample with
// timestamp >= t, prev the last sample before it. The lookup exploits the
// cheapest access path the series offers: a direct seek for tree-backed
// series, binary search for indexed series, and a forward scan otherwise.
func bracket(s Series, t float64) (prev, next TimedPose, hasPrev, hasNext bool) {
	if sk, ok := s.(Seeker); ok {
		next, hasNext = sk.SeekGE(t)
		prev, hasPrev = sk.SeekLT(t)
		return prev, next, hasPrev, hasNext
	}

	if ix, ok := s.(Indexed); ok {
		n := s.Len()
		i := sort.Search(n, func(i int) bool {
			return ix.At(i).Time >= t
		})
		if i < n {
			next, hasNext = ix.At(i), true
		}
		if i > 0 {
			prev, hasPrev = ix.At(i-1), true
		}
		return prev, next, hasPrev, hasNext
	}

	c := s.Cursor()
	for c.Next() {
		tp := c.Sample()
		if tp.Time >= t {
			next, hasNext = tp, true
			break
		}
		prev, hasPrev = tp, true
	}
	return prev, next, hasPrev, hasNext
}
