package preslam

import "gonum.org/v1/gonum/spatial/r3"

// Pose is a 6-DOF pose: a position paired with an orientation. Poses are
// immutable values and are copied wherever used.
type Pose struct {
	Position    r3.Vec
	Orientation Quaternion
}

// TimedPose is a Pose tagged with a timestamp in seconds. No epoch
// semantics are assumed; only relative ordering and differences matter.
type TimedPose struct {
	Time float64
	Pose Pose
}

// InterpolatePose interpolates between two poses. The position is
// interpolated linearly and the orientation spherically, with shortest-arc
// correction applied inside Slerp. The factor t is clamped to [0, 1];
// out-of-range values are silently clamped, never rejected.
func InterpolatePose(p1, p2 Pose, t float64) Pose {
	t = clamp01(t)
	return Pose{
		Position:    Lerp(p1.Position, p2.Position, t),
		Orientation: Slerp(p1.Orientation, p2.Orientation, t),
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
