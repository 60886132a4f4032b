package preslam

// Quaternion numerics
const (
	// normEpsilon is the norm below which a quaternion is treated as zero.
	// Normalizing such a quaternion returns the identity instead of
	// dividing by a vanishing norm.
	normEpsilon = 1e-10

	// slerpDotThreshold is the dot product above which two quaternions are
	// considered near-parallel. Beyond it the SLERP 1/sin(angle) term
	// amplifies floating-point error, so interpolation falls back to
	// normalized linear interpolation.
	slerpDotThreshold = 0.9995
)

// Engine defaults
const (
	// defaultMinGap is the narrowest bracket the engine interpolates
	// across. A bracket below this returns the earlier sample unchanged.
	defaultMinGap = 1e-9

	// defaultMatchEpsilon keeps sample-timestamp matching at exact
	// floating-point equality.
	defaultMatchEpsilon = 0.0
)

// Batch evaluation
const (
	// minBatchPerWorker is the smallest number of query times worth
	// handing to a single worker. Batches below workers*minBatchPerWorker
	// run sequentially.
	minBatchPerWorker = 4
)

// B-tree series
const (
	// btreeDegree is the branching degree of BTreeSeries nodes.
	btreeDegree = 32
)
