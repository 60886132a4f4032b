// Command solve-matrix runs every dense solver against a set of demo
// systems and prints the results side by side.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/GrooveWJH/preSLAM/solver"
	"gonum.org/v1/gonum/mat"
)

func main() {
	var (
		maxIter = flag.Int("max-iterations", solver.DefaultMaxIterations, "Jacobi iteration cap")
		tol     = flag.Float64("tolerance", solver.DefaultTolerance, "Jacobi convergence tolerance")
	)
	flag.Parse()

	// Symmetric positive definite and diagonally dominant, so every
	// method applies.
	a := mat.NewDense(3, 3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	b := mat.NewVecDense(3, []float64{1, 2, 3})

	fmt.Println("System: Ax = b")
	fmt.Printf("A =\n%v\n", mat.Formatted(a, mat.Prefix("    ")))
	fmt.Printf("b = %v\n\n", mat.Formatted(b.T()))

	type namedSolve struct {
		name string
		run  func() (solver.Result, error)
	}

	solves := []namedSolve{
		{"LU", func() (solver.Result, error) { return solver.SolveLU(a, b) }},
		{"Cholesky", func() (solver.Result, error) { return solver.SolveCholesky(a, b) }},
		{"QR", func() (solver.Result, error) { return solver.SolveQR(a, b) }},
		{"SVD", func() (solver.Result, error) { return solver.SolveSVD(a, b) }},
		{"Jacobi", func() (solver.Result, error) {
			return solver.SolveJacobi(a, b, &solver.JacobiOptions{
				MaxIterations: *maxIter,
				Tolerance:     *tol,
			})
		}},
	}

	for _, s := range solves {
		res, err := s.run()
		if err != nil {
			log.Fatalf("%s failed: %v", s.name, err)
		}
		printResult(res)
	}

	// Overdetermined least-squares fit, QR and SVD territory.
	fmt.Println("Least squares: 4 equations, 2 unknowns")
	lsA := mat.NewDense(4, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 4,
	})
	lsB := mat.NewVecDense(4, []float64{6, 5, 7, 10})

	for _, s := range []namedSolve{
		{"QR", func() (solver.Result, error) { return solver.SolveQR(lsA, lsB) }},
		{"SVD", func() (solver.Result, error) { return solver.SolveSVD(lsA, lsB) }},
	} {
		res, err := s.run()
		if err != nil {
			log.Fatalf("%s failed: %v", s.name, err)
		}
		printResult(res)
	}
}

func printResult(res solver.Result) {
	fmt.Printf("Method: %s\n", res.Method)
	if !res.Success {
		fmt.Println("  solve failed")
		fmt.Println("----------------------------------------")
		return
	}
	fmt.Printf("  x = %v\n", mat.Formatted(res.Solution.T()))
	fmt.Printf("  residual = %.3e\n", res.Residual)
	if res.Iterations > 0 {
		fmt.Printf("  iterations = %d\n", res.Iterations)
	}
	fmt.Println("----------------------------------------")
}
