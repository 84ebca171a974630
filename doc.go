// Package paretoti aligns the vertex labeling of two independently fitted
// sets of archetypes.
//
// Archetypes are the extreme points of a convex-hull approximation fitted to
// a dataset. Each fitting run returns its archetypes in an arbitrary order,
// so comparing two runs (for example bootstrap replicates of the same data)
// first requires discovering which archetype of the second set corresponds to
// which archetype of the first. Align does exactly that: it builds the
// pairwise distance matrix between the two sets and solves the resulting
// assignment problem for the matching with minimal total distance.
//
// Basic usage, with arc1 and arc2 as D×K matrices whose columns are
// archetype coordinates:
//
//	al, err := paretoti.Align(arc1, arc2, paretoti.DefaultConfig())
//	// al.Mapping[i] is the column of arc2 matched to column i of arc1
//	// al.TotalDist is the summed distance across matched pairs
//	aligned, err := al.Apply(arc2) // arc2 reordered into arc1's order
//
// For a caller-supplied cost matrix, skip the distance construction:
//
//	al, err := paretoti.AlignDistances(dist, paretoti.DefaultConfig())
//
// # Method selection
//
// Two interchangeable strategies solve the assignment; both return the same
// minimum total distance:
//
//	cfg.Method = paretoti.MethodOptimal    // LP-based exact solve (default)
//	cfg.Method = paretoti.MethodExhaustive // brute-force permutation search
//
// MethodOptimal formulates minimum-cost perfect bipartite matching as a
// linear program; the assignment polytope has integral vertices, so the LP
// optimum is the true matching optimum. MethodExhaustive enumerates all K!
// permutations instead and carries no solver dependency, but its factorial
// cost makes it impractical beyond K of about 10 (10! is roughly 3.6 million
// permutations). Nothing enforces that limit at runtime.
//
// The package is purely functional: no global state, no randomness, no I/O.
// Repeated calls with identical inputs return identical results, and distinct
// calls may run concurrently without coordination.
package paretoti
