package paretoti

import "gonum.org/v1/gonum/stat/combin"

// Permutations returns every permutation of {0..k-1}, one per row: k! rows in
// total, pairwise distinct, each containing every value exactly once. Rows are
// emitted in a deterministic generation order, but that order carries no
// meaning and callers must not depend on it.
//
// Cost is factorial in both time and memory, which makes this impractical
// beyond k ≈ 10 (10! ≈ 3.6M rows). That limit is a caller responsibility;
// no runtime guard is applied.
//
// Permutations(0) returns a single empty permutation. Negative k panics.
func Permutations(k int) [][]int {
	if k < 0 {
		panic("paretoti: Permutations called with negative k")
	}
	return combin.Permutations(k, k)
}
