package paretoti

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// LPSolver solves the assignment exactly by formulating it as a linear
// program and running a simplex solve. The LP relaxation of bipartite
// assignment has integral vertices, so the optimum it returns is a true
// minimum-cost perfect matching; no branch-and-bound is involved.
//
// Solver failures (infeasibility, numerical breakdown) are wrapped in
// ErrSolver together with the underlying lp error and returned as-is:
// no retry, no fallback to another strategy.
type LPSolver struct {
	// Tol is the pivot tolerance handed to the simplex routine.
	// Zero means the solver's default.
	Tol float64
}

// Solve finds the minimum-cost perfect matching on a square distance matrix.
//
// The standard-form program has one variable per (i, j) pair, a unit-sum
// constraint per row and one per column. The final column constraint is
// linearly implied by the rest and is dropped, keeping the constraint matrix
// full row rank for the simplex phase-1.
func (s LPSolver) Solve(dist mat.Matrix) (*Alignment, error) {
	k, err := squareDims(dist)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return emptyAlignment(), nil
	}

	// Objective: minimize sum of dist[i,j] * x[i,j], variables row-major.
	obj := make([]float64, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			obj[i*k+j] = dist.At(i, j)
		}
	}

	rows := 2*k - 1
	a := mat.NewDense(rows, k*k, nil)
	b := make([]float64, rows)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			a.Set(i, i*k+j, 1)
		}
		b[i] = 1
	}
	for j := 0; j < k-1; j++ {
		for i := 0; i < k; i++ {
			a.Set(k+j, i*k+j, 1)
		}
		b[k+j] = 1
	}

	total, x, err := lp.Simplex(obj, a, b, s.Tol, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolver, err)
	}

	// Each row of the solution holds a single 1 at the assigned column;
	// take the per-row maximum to read the matching off the vertex.
	mapping := make([]int, k)
	for i := 0; i < k; i++ {
		mapping[i] = floats.MaxIdx(x[i*k : (i+1)*k])
	}
	return &Alignment{TotalDist: total, Mapping: mapping}, nil
}
