package preslam

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion represents a 3D rotation as w + xi + yj + zk.
//
// The zero value is not a valid rotation; use Identity for the no-rotation
// quaternion. Unit norm is expected but not enforced at construction;
// callers normalize explicitly via Normalized.
type Quaternion struct {
	W, X, Y, Z float64
}

// Identity returns the identity rotation (w=1, x=y=z=0).
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// number converts q to gonum's quaternion representation.
func (q Quaternion) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// fromNumber converts a gonum quaternion back to a Quaternion.
func fromNumber(n quat.Number) Quaternion {
	return Quaternion{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Mul returns the Hamilton product q*r, the rotation r followed by q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return fromNumber(quat.Mul(q.number(), r.number()))
}

// Add returns the componentwise sum q+r.
func (q Quaternion) Add(r Quaternion) Quaternion {
	return fromNumber(quat.Add(q.number(), r.number()))
}

// Scale returns q with every component multiplied by k.
func (q Quaternion) Scale(k float64) Quaternion {
	return fromNumber(quat.Scale(k, q.number()))
}

// Neg returns -q. Note that q and -q represent the same rotation; negation
// matters only for interpolation path selection.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Dot returns the 4-component dot product of q and r.
func (q Quaternion) Dot(r Quaternion) float64 {
	return q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z
}

// Norm returns the Euclidean norm of q.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.number())
}

// Normalized returns the unit quaternion with the same orientation as q.
// A quaternion with norm at or below 1e-10 maps to the identity rather
// than dividing by a near-zero norm; this is a defined fallback, not an
// error.
func (q Quaternion) Normalized() Quaternion {
	norm := q.Norm()
	if norm <= normEpsilon {
		return Identity()
	}
	return q.Scale(1 / norm)
}

// Slerp spherically interpolates between q1 and q2 with constant angular
// velocity. Inputs are assumed (but not required) to be unit norm. The
// shorter of the two arcs between the rotations is always taken: when the
// quaternion dot product is negative, q2 is negated, which leaves its
// rotation unchanged. Near-parallel inputs (dot > 0.9995) fall back to
// normalized linear interpolation, where the spherical formula's
// 1/sin(angle) term would amplify floating-point error.
//
// The factor t is not clamped here; InterpolatePose clamps before calling.
func Slerp(q1, q2 Quaternion, t float64) Quaternion {
	dot := q1.Dot(q2)

	// Shortest-arc correction: q and -q are the same rotation, but only
	// one of them interpolates along the minor arc.
	if dot < 0 {
		q2 = q2.Neg()
		dot = -dot
	}

	if dot > slerpDotThreshold {
		return lerpQuat(q1, q2, t).Normalized()
	}

	angle := math.Acos(dot)
	sinAngle := math.Sin(angle)
	factor1 := math.Sin((1-t)*angle) / sinAngle
	factor2 := math.Sin(t*angle) / sinAngle

	return q1.Scale(factor1).Add(q2.Scale(factor2))
}

// lerpQuat is the componentwise linear interpolation q1*(1-t) + q2*t.
func lerpQuat(q1, q2 Quaternion, t float64) Quaternion {
	return q1.Scale(1 - t).Add(q2.Scale(t))
}
