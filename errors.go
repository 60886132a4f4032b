package preslam

import "errors"

// Errors returned by pose queries. Every error reflects a caller-input or
// precondition violation; nothing is retried internally.
var (
	// ErrEmptySeries indicates a query against a series with no samples.
	ErrEmptySeries = errors.New("pose series is empty")

	// ErrOutOfRange indicates a query time outside the closed interval
	// spanned by the series. The caller may retry with an in-range time.
	ErrOutOfRange = errors.New("query time outside sample range")

	// ErrUnorderedSeries indicates the neighbor search produced a bracket
	// inconsistent with the already-verified time range. It means the
	// series violated the non-decreasing-timestamp precondition and is a
	// programming error on the caller's side, not a condition to catch
	// and continue from.
	ErrUnorderedSeries = errors.New("series timestamps are not non-decreasing")

	// ErrInvalidConfig indicates invalid interpolator configuration.
	ErrInvalidConfig = errors.New("invalid interpolator configuration")

	// ErrDimensionMismatch indicates points of different dimensions.
	ErrDimensionMismatch = errors.New("points have different dimensions")
)
