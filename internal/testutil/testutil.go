// Package testutil provides reusable assertion helpers for geometry and
// interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

// Default tolerances for geometry assertions.
const (
	// UnitNormTolerance is the allowed deviation from unit norm for
	// interpolated quaternions.
	UnitNormTolerance = 1e-9

	// ComponentTolerance is the default componentwise comparison
	// tolerance.
	ComponentTolerance = 1e-12
)

// AssertFinite verifies that none of the values are NaN or Inf.
func AssertFinite(t *testing.T, values ...float64) bool {
	t.Helper()
	for i, v := range values {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "value %d is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "value %d is Inf", i)
		}
	}
	return true
}

// AssertUnitNorm verifies that a 4-component norm is within tolerance of 1.
func AssertUnitNorm(t *testing.T, w, x, y, z, tolerance float64) bool {
	t.Helper()
	norm := math.Sqrt(w*w + x*x + y*y + z*z)
	return assert.InDelta(t, 1.0, norm, tolerance,
		"norm = %v, want 1 within %v", norm, tolerance)
}

// AssertVecEqual verifies two positions agree componentwise.
func AssertVecEqual(t *testing.T, want, got r3.Vec, tolerance float64) bool {
	t.Helper()
	ok := assert.InDelta(t, want.X, got.X, tolerance, "X: want %v, got %v", want.X, got.X)
	ok = assert.InDelta(t, want.Y, got.Y, tolerance, "Y: want %v, got %v", want.Y, got.Y) && ok
	ok = assert.InDelta(t, want.Z, got.Z, tolerance, "Z: want %v, got %v", want.Z, got.Z) && ok
	return ok
}

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%v, actual=%v)",
		relError, tolerance, expected, actual)
}
