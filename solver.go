package paretoti

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AssignmentSolver finds a minimum-cost perfect matching on a square distance
// matrix: entry (i, j) is the cost of pairing row archetype i with column
// archetype j. Both implementations share this contract and agree on the
// minimum achievable total distance; only the search procedure differs.
type AssignmentSolver interface {
	Solve(dist mat.Matrix) (*Alignment, error)
}

// solverFor maps a validated Method to its solver.
func solverFor(cfg Config) AssignmentSolver {
	switch cfg.Method {
	case MethodExhaustive:
		return BruteForceSolver{}
	default:
		return LPSolver{Tol: cfg.SolverTol}
	}
}

// squareDims validates that dist is a non-nil square matrix and returns its
// order. Shared by both solvers.
func squareDims(dist mat.Matrix) (int, error) {
	if dist == nil {
		return 0, fmt.Errorf("%w: nil distance matrix", ErrShapeMismatch)
	}
	r, c := dist.Dims()
	if r != c {
		return 0, fmt.Errorf("%w: distance matrix is %dx%d, want square", ErrShapeMismatch, r, c)
	}
	return r, nil
}
