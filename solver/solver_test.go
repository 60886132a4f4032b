package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// testSystem returns a symmetric positive definite, diagonally dominant
// 3x3 system with the known solution x = (2/9, 1/9, 13/9).
func testSystem() (*mat.Dense, *mat.VecDense, []float64) {
	a := mat.NewDense(3, 3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	b := mat.NewVecDense(3, []float64{1, 2, 3})
	want := []float64{2.0 / 9, 1.0 / 9, 13.0 / 9}
	return a, b, want
}

func assertSolution(t *testing.T, res Result, want []float64, tolerance float64) {
	t.Helper()
	require.True(t, res.Success, "method %s did not succeed", res.Method)
	require.NotNil(t, res.Solution)
	require.Equal(t, len(want), res.Solution.Len())
	for i, w := range want {
		assert.InDelta(t, w, res.Solution.AtVec(i), tolerance, "x[%d]", i)
	}
	assert.Less(t, res.Residual, tolerance, "residual")
}

func TestDirectSolvers(t *testing.T) {
	a, b, want := testSystem()

	tests := []struct {
		name  string
		solve func(mat.Matrix, mat.Vector) (Result, error)
	}{
		{"LU", SolveLU},
		{"Cholesky", SolveCholesky},
		{"QR", SolveQR},
		{"SVD", SolveSVD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.solve(a, b)
			require.NoError(t, err)
			assertSolution(t, res, want, 1e-10)
		})
	}
}

func TestSolveLUSingular(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		1, 2,
		2, 4,
	})
	b := mat.NewVecDense(2, []float64{1, 1})

	res, err := SolveLU(a, b)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Nil(t, res.Solution)
}

func TestSolveCholeskyNotSymmetric(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 1,
	})
	b := mat.NewVecDense(2, []float64{1, 1})

	_, err := SolveCholesky(a, b)
	assert.ErrorIs(t, err, ErrNotSymmetric)
}

func TestSolveCholeskyIndefinite(t *testing.T) {
	// Symmetric but not positive definite.
	a := mat.NewDense(2, 2, []float64{
		1, 2,
		2, 1,
	})
	b := mat.NewVecDense(2, []float64{1, 1})

	res, err := SolveCholesky(a, b)
	require.NoError(t, err)
	assert.False(t, res.Success)
}

// TestLeastSquares fits a line through four points; the minimizer is
// intercept 3.5, slope 1.4.
func TestLeastSquares(t *testing.T) {
	a := mat.NewDense(4, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 4,
	})
	b := mat.NewVecDense(4, []float64{6, 5, 7, 10})
	want := []float64{3.5, 1.4}

	for _, tt := range []struct {
		name  string
		solve func(mat.Matrix, mat.Vector) (Result, error)
	}{
		{"QR", SolveQR},
		{"SVD", SolveSVD},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.solve(a, b)
			require.NoError(t, err)
			require.True(t, res.Success)
			for i, w := range want {
				assert.InDelta(t, w, res.Solution.AtVec(i), 1e-10, "x[%d]", i)
			}
			// The fit is not exact; the residual is the remaining misfit.
			assert.Greater(t, res.Residual, 1.0)
		})
	}
}

// TestSolveSVDRankDeficient checks that SVD still produces the
// minimum-norm solution when the matrix is rank deficient.
func TestSolveSVDRankDeficient(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{
		1, 1,
		1, 1,
	})
	b := mat.NewVecDense(2, []float64{2, 2})

	res, err := SolveSVD(a, b)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.InDelta(t, 1, res.Solution.AtVec(0), 1e-10)
	assert.InDelta(t, 1, res.Solution.AtVec(1), 1e-10)
	assert.InDelta(t, 0, res.Residual, 1e-10)
}

func TestShapeErrors(t *testing.T) {
	rect := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	square := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	b2 := mat.NewVecDense(2, []float64{1, 1})
	b3 := mat.NewVecDense(3, []float64{1, 1, 1})

	_, err := SolveLU(rect, b2)
	assert.ErrorIs(t, err, ErrNotSquare)

	_, err = SolveLU(square, b3)
	assert.ErrorIs(t, err, ErrShape)

	_, err = SolveCholesky(rect, b2)
	assert.ErrorIs(t, err, ErrNotSquare)

	// Underdetermined systems are outside QR's contract.
	_, err = SolveQR(rect, b2)
	assert.ErrorIs(t, err, ErrShape)

	_, err = SolveSVD(square, b3)
	assert.ErrorIs(t, err, ErrShape)

	_, err = SolveJacobi(square, b3, nil)
	assert.ErrorIs(t, err, ErrShape)
}
