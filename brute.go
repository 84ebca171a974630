package paretoti

import "gonum.org/v1/gonum/mat"

// BruteForceSolver finds the minimum-cost perfect matching by scoring every
// permutation of the column archetypes. Correctness is by exhaustive
// enumeration; cost is O(K! * K) in both time and memory for the
// materialized permutation set, which makes it impractical beyond K ≈ 10.
// That limit is a documented precondition, not a runtime check.
//
// Ties on total distance are broken by the first permutation encountered in
// generation order. The winner among tied optima is deterministic for this
// implementation but otherwise arbitrary; callers must not read meaning
// into it.
type BruteForceSolver struct{}

// Solve scores Permutations(k) against dist and returns the cheapest one.
func (BruteForceSolver) Solve(dist mat.Matrix) (*Alignment, error) {
	k, err := squareDims(dist)
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return emptyAlignment(), nil
	}

	perms := Permutations(k)
	best := 0
	bestCost := permutationCost(dist, perms[0])
	for pi := 1; pi < len(perms); pi++ {
		if cost := permutationCost(dist, perms[pi]); cost < bestCost {
			bestCost = cost
			best = pi
		}
	}

	mapping := append([]int(nil), perms[best]...)
	return &Alignment{TotalDist: bestCost, Mapping: mapping}, nil
}

// permutationCost sums dist[i, perm[i]] over all rows.
func permutationCost(dist mat.Matrix, perm []int) float64 {
	var cost float64
	for i, j := range perm {
		cost += dist.At(i, j)
	}
	return cost
}
