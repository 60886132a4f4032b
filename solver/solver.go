// Package solver wraps gonum/mat dense decompositions behind a uniform
// solve(A, b) interface for the small linear systems that show up around
// pose estimation: calibration fits, least-squares alignment, covariance
// propagation.
//
// Each solver returns a Result describing the solution, the l2 residual
// ‖Ax − b‖, and whether the method succeeded numerically. Shape violations
// are reported as errors; numerical failure (a singular or indefinite
// matrix) is reported through Result.Success so callers can fall through
// to a more robust method.
package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result describes the outcome of solving a dense linear system Ax = b.
type Result struct {
	// Solution is the solution vector x. It is nil when Success is false.
	Solution *mat.VecDense

	// Success reports whether the method produced a finite solution.
	Success bool

	// Iterations is the iteration count for iterative methods, zero for
	// direct decompositions.
	Iterations int

	// Residual is the l2 norm of Ax − b. For least-squares solves this
	// is the residual of the minimizer, not necessarily near zero.
	Residual float64

	// Method names the decomposition or iteration used.
	Method string
}

// Errors returned for malformed systems.
var (
	// ErrShape indicates matrix and vector dimensions that do not form a
	// solvable system.
	ErrShape = errors.New("matrix and vector dimensions do not match")

	// ErrNotSquare indicates a non-square matrix passed to a solver that
	// requires one.
	ErrNotSquare = errors.New("matrix is not square")

	// ErrNotSymmetric indicates an asymmetric matrix passed to a solver
	// that requires symmetry.
	ErrNotSymmetric = errors.New("matrix is not symmetric")
)

// symmetryTol is the relative tolerance for the Cholesky symmetry check.
const symmetryTol = 1e-12

// svdCutoffFactor scales the largest singular value to the cutoff below
// which singular values are treated as zero.
const svdCutoffFactor = 1e-14

// checkSquare validates a square system.
func checkSquare(a mat.Matrix, b mat.Vector) error {
	r, c := a.Dims()
	if r != c {
		return fmt.Errorf("%w: got %dx%d", ErrNotSquare, r, c)
	}
	if b.Len() != r {
		return fmt.Errorf("%w: matrix is %dx%d, vector has %d elements", ErrShape, r, c, b.Len())
	}
	return nil
}

// residualNorm returns ‖Ax − b‖₂.
func residualNorm(a mat.Matrix, x, b mat.Vector) float64 {
	var r mat.VecDense
	r.MulVec(a, x)
	r.SubVec(&r, b)
	return math.Sqrt(mat.Dot(&r, &r))
}

// finiteVec reports whether every element of v is finite.
func finiteVec(v *mat.VecDense) bool {
	for i := 0; i < v.Len(); i++ {
		e := v.AtVec(i)
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return false
		}
	}
	return true
}

// numericalOutcome folds a gonum solve error into Result terms: a finite
// condition number is an ill-conditioning warning that still carries a
// usable solution, an infinite one means singular, and anything else is a
// failure.
func numericalOutcome(err error) bool {
	if err == nil {
		return true
	}
	var cond mat.Condition
	if errors.As(err, &cond) {
		return !math.IsInf(float64(cond), 0)
	}
	return false
}

// SolveLU solves a general square system with partial-pivot LU
// decomposition.
func SolveLU(a mat.Matrix, b mat.Vector) (Result, error) {
	res := Result{Method: "PartialPivLU"}
	if err := checkSquare(a, b); err != nil {
		return res, err
	}

	var lu mat.LU
	lu.Factorize(a)

	var x mat.VecDense
	err := lu.SolveVecTo(&x, false, b)
	if !numericalOutcome(err) || !finiteVec(&x) {
		return res, nil
	}

	res.Solution = &x
	res.Residual = residualNorm(a, &x, b)
	res.Success = true
	return res, nil
}

// SolveCholesky solves a symmetric positive definite system with a
// Cholesky (LLᵀ) decomposition. Asymmetric input is rejected with
// ErrNotSymmetric; an indefinite matrix fails the factorization and is
// reported through Result.Success.
func SolveCholesky(a mat.Matrix, b mat.Vector) (Result, error) {
	res := Result{Method: "Cholesky"}
	if err := checkSquare(a, b); err != nil {
		return res, err
	}
	if !mat.EqualApprox(a, a.T(), symmetryTol) {
		return res, ErrNotSymmetric
	}

	n, _ := a.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		// Not positive definite.
		return res, nil
	}

	var x mat.VecDense
	if err := chol.SolveVecTo(&x, b); !numericalOutcome(err) {
		return res, nil
	}

	res.Solution = &x
	res.Residual = residualNorm(a, &x, b)
	res.Success = true
	return res, nil
}

// SolveQR solves a square or overdetermined system with a Householder QR
// decomposition. For overdetermined systems the solution minimizes
// ‖Ax − b‖₂ and Result.Residual is the least-squares residual.
func SolveQR(a mat.Matrix, b mat.Vector) (Result, error) {
	res := Result{Method: "HouseholderQR"}
	r, c := a.Dims()
	if r < c {
		return res, fmt.Errorf("%w: %dx%d system is underdetermined", ErrShape, r, c)
	}
	if b.Len() != r {
		return res, fmt.Errorf("%w: matrix is %dx%d, vector has %d elements", ErrShape, r, c, b.Len())
	}

	var qr mat.QR
	qr.Factorize(a)

	var x mat.VecDense
	err := qr.SolveVecTo(&x, false, b)
	if !numericalOutcome(err) || !finiteVec(&x) {
		return res, nil
	}

	res.Solution = &x
	res.Residual = residualNorm(a, &x, b)
	res.Success = true
	return res, nil
}

// SolveSVD solves an arbitrary system through the thin singular value
// decomposition, returning the minimum-norm least-squares solution
// x = V Σ⁺ Uᵀ b. Singular values below svdCutoffFactor times the largest
// are truncated, which makes the solve tolerant of rank deficiency.
func SolveSVD(a mat.Matrix, b mat.Vector) (Result, error) {
	res := Result{Method: "SVD"}
	r, c := a.Dims()
	if b.Len() != r {
		return res, fmt.Errorf("%w: matrix is %dx%d, vector has %d elements", ErrShape, r, c, b.Len())
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return res, nil
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	if len(values) == 0 {
		return res, nil
	}
	cutoff := values[0] * svdCutoffFactor

	// y = Σ⁺ Uᵀ b with truncation of negligible singular values.
	var utb mat.VecDense
	utb.MulVec(u.T(), b)
	y := mat.NewVecDense(len(values), nil)
	for i, s := range values {
		if s > cutoff {
			y.SetVec(i, utb.AtVec(i)/s)
		}
	}

	var x mat.VecDense
	x.MulVec(&v, y)
	if !finiteVec(&x) {
		return res, nil
	}

	res.Solution = &x
	res.Residual = residualNorm(a, &x, b)
	res.Success = true
	return res, nil
}
