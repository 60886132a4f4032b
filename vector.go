package preslam

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Lerp linearly interpolates between positions a and b: a*(1-t) + b*t.
// The factor t is not restricted to [0, 1] here; clamping is the caller's
// responsibility.
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(r3.Scale(1-t, a), r3.Scale(t, b))
}

// Distance returns the Euclidean distance between two points of arbitrary
// but equal dimension. Empty points are at distance 0.
func Distance(p, q []float64) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("%w: dimensions %d and %d", ErrDimensionMismatch, len(p), len(q))
	}
	if len(p) == 0 {
		return 0, nil
	}
	return floats.Distance(p, q, euclideanNorm), nil
}

// euclideanNorm selects the L2 norm in floats.Distance.
const euclideanNorm = 2
