package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrZeroDiagonal indicates a zero on the matrix diagonal, which leaves
// the Jacobi update undefined.
var ErrZeroDiagonal = errors.New("zero element on the matrix diagonal")

// Jacobi iteration defaults.
const (
	// DefaultMaxIterations bounds the Jacobi iteration count.
	DefaultMaxIterations = 1000

	// DefaultTolerance is the convergence threshold on the max-norm of
	// the update between iterations.
	DefaultTolerance = 1e-6
)

// JacobiOptions tunes the Jacobi iteration. The zero value selects the
// defaults.
type JacobiOptions struct {
	// MaxIterations bounds the iteration count. Zero selects
	// DefaultMaxIterations.
	MaxIterations int

	// Tolerance is the convergence threshold on the max-norm of the
	// update between iterations. Zero selects DefaultTolerance.
	Tolerance float64
}

// SolveJacobi solves a square system with the Jacobi iteration
//
//	x[i] ← (b[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i]
//
// starting from the zero vector. Convergence is guaranteed for strictly
// diagonally dominant matrices and reported through Result.Success
// otherwise; Result.Iterations holds the count actually used. A zero on
// the diagonal makes the iteration undefined and is rejected with an
// error.
func SolveJacobi(a mat.Matrix, b mat.Vector, opts *JacobiOptions) (Result, error) {
	res := Result{Method: "Jacobi"}
	if err := checkSquare(a, b); err != nil {
		return res, err
	}

	maxIter := DefaultMaxIterations
	tol := DefaultTolerance
	if opts != nil {
		if opts.MaxIterations > 0 {
			maxIter = opts.MaxIterations
		}
		if opts.Tolerance > 0 {
			tol = opts.Tolerance
		}
	}

	n := b.Len()
	for i := 0; i < n; i++ {
		if a.At(i, i) == 0 {
			return res, fmt.Errorf("%w: row %d", ErrZeroDiagonal, i)
		}
	}

	x := mat.NewVecDense(n, nil)
	next := mat.NewVecDense(n, nil)

	for iter := 1; iter <= maxIter; iter++ {
		var delta float64
		for i := 0; i < n; i++ {
			sum := b.AtVec(i)
			for j := 0; j < n; j++ {
				if j != i {
					sum -= a.At(i, j) * x.AtVec(j)
				}
			}
			xi := sum / a.At(i, i)
			if d := math.Abs(xi - x.AtVec(i)); d > delta {
				delta = d
			}
			next.SetVec(i, xi)
		}
		x.CopyVec(next)
		res.Iterations = iter

		if math.IsNaN(delta) || math.IsInf(delta, 0) {
			// Diverged.
			return res, nil
		}
		if delta < tol {
			res.Solution = x
			res.Residual = residualNorm(a, x, b)
			res.Success = true
			return res, nil
		}
	}

	// Out of iterations without convergence.
	return res, nil
}
