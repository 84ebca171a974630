package paretoti

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShapeMismatch reports archetype sets or distance matrices whose
	// shapes rule the computation out: differing archetype counts or
	// dimensionalities, non-square distance matrices, nil or empty inputs.
	// It is always raised before any distance or matching work begins.
	ErrShapeMismatch = errors.New("paretoti: shape mismatch")

	// ErrUnknownMethod reports a Config whose Method is not one of the
	// defined alignment methods, or whose SolverTol is negative.
	ErrUnknownMethod = errors.New("paretoti: invalid alignment config")

	// ErrSolver reports a failure inside the LP assignment solve. The
	// underlying solver error is wrapped alongside it and can be inspected
	// with errors.Is / errors.As.
	ErrSolver = errors.New("paretoti: assignment solve failed")
)

// Method selects the assignment strategy used by Align and AlignDistances.
type Method string

const (
	// MethodOptimal solves the assignment exactly as a linear program.
	// Polynomial cost; the default.
	MethodOptimal Method = "optimal"

	// MethodExhaustive scores every permutation of the archetypes and keeps
	// the cheapest. Factorial cost; impractical beyond K of about 10.
	MethodExhaustive Method = "exhaustive"
)

// Config controls archetype alignment behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Method is the assignment strategy. Both methods return the same
	// minimum total distance; the optimal permutation itself may differ
	// between them when several matchings tie. Default: MethodOptimal.
	Method Method

	// Metric measures the separation between archetype coordinate vectors
	// when Align builds the distance matrix. AlignDistances ignores it
	// since distances are already computed. Default: EuclideanMetric.
	Metric DistanceMetric

	// SolverTol is forwarded to the LP solver as its pivot tolerance.
	// Only MethodOptimal reads it. 0 means the solver default.
	// Must be >= 0. Default: 0.
	SolverTol float64
}

// DefaultConfig returns a Config with the default method and metric.
func DefaultConfig() Config {
	return Config{
		Method: MethodOptimal,
		Metric: EuclideanMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Method == "" {
		cfg.Method = MethodOptimal
	}
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg Config) error {
	switch cfg.Method {
	case MethodOptimal, MethodExhaustive:
		// valid
	default:
		return fmt.Errorf("%w: unknown method %q", ErrUnknownMethod, cfg.Method)
	}
	if cfg.SolverTol < 0 {
		return fmt.Errorf("%w: SolverTol must be >= 0, got %g", ErrUnknownMethod, cfg.SolverTol)
	}
	return nil
}

// Alignment is the result of matching two archetype sets.
type Alignment struct {
	// TotalDist is the summed distance across all matched pairs: the
	// minimum achievable total for the chosen metric.
	TotalDist float64

	// Mapping holds, at position i, the index of the archetype in the
	// second set matched to archetype i of the first set. It is always a
	// permutation of 0..K-1.
	Mapping []int
}

// emptyAlignment is the result of aligning two empty archetype sets.
func emptyAlignment() *Alignment {
	return &Alignment{Mapping: []int{}}
}

// Apply returns arc with its columns reordered by the alignment, so that
// column i of the result is column Mapping[i] of arc. Applying an alignment
// to the second set it was computed from puts that set's archetypes in the
// first set's order.
//
// arc must have exactly len(Mapping) columns, and every Mapping entry must be
// a valid column index; otherwise Apply fails with ErrShapeMismatch.
func (al *Alignment) Apply(arc mat.Matrix) (*mat.Dense, error) {
	if arc == nil {
		return nil, fmt.Errorf("%w: nil archetype matrix", ErrShapeMismatch)
	}
	d, k := arc.Dims()
	if k != len(al.Mapping) {
		return nil, fmt.Errorf("%w: alignment maps %d archetypes, matrix has %d columns", ErrShapeMismatch, len(al.Mapping), k)
	}
	if d == 0 || k == 0 {
		return nil, fmt.Errorf("%w: empty archetype matrix", ErrShapeMismatch)
	}
	for _, j := range al.Mapping {
		if j < 0 || j >= k {
			return nil, fmt.Errorf("%w: mapping entry %d out of range for %d archetypes", ErrShapeMismatch, j, k)
		}
	}

	out := mat.NewDense(d, k, nil)
	col := make([]float64, d)
	for i, j := range al.Mapping {
		mat.Col(col, j, arc)
		out.SetCol(i, col)
	}
	return out, nil
}

// Align matches the archetypes of arc2 to those of arc1 so that the total
// distance between matched pairs is minimal. arc1 and arc2 are D×K matrices
// whose columns are archetype coordinate vectors, as produced by two
// independent fits over the same or resampled data; since each fit orders its
// archetypes arbitrarily, Align recovers which archetype corresponds to which.
//
// The computation is pure and deterministic: no shared state, no randomness,
// no I/O beyond the in-process LP solve. Distinct calls are therefore safe to
// run concurrently; parallelizing them is the caller's business.
//
// Mismatched shapes fail with ErrShapeMismatch before any computation, and an
// invalid Config fails with ErrUnknownMethod before dispatch. Two empty sets
// align trivially to an empty mapping with zero distance.
func Align(arc1, arc2 mat.Matrix, cfg Config) (*Alignment, error) {
	applyDefaults(&cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if arc1 == nil || arc2 == nil {
		return nil, fmt.Errorf("%w: nil archetype matrix", ErrShapeMismatch)
	}
	_, k1 := arc1.Dims()
	_, k2 := arc2.Dims()
	if k1 != k2 {
		return nil, fmt.Errorf("%w: arc1 has %d archetypes, arc2 has %d", ErrShapeMismatch, k1, k2)
	}
	if k1 == 0 {
		return emptyAlignment(), nil
	}

	dist, err := ArchetypeDistances(arc1, arc2, cfg.Metric)
	if err != nil {
		return nil, err
	}
	return solverFor(cfg).Solve(dist)
}

// AlignDistances matches archetypes directly from a precomputed K×K distance
// matrix, where entry (i, j) is the cost of pairing archetype i of the first
// set with archetype j of the second. The Config.Metric field is ignored
// since distances are already computed.
//
// A nil or non-square matrix fails with ErrShapeMismatch; a 0×0 matrix aligns
// trivially to an empty mapping.
func AlignDistances(dist mat.Matrix, cfg Config) (*Alignment, error) {
	applyDefaults(&cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if _, err := squareDims(dist); err != nil {
		return nil, err
	}
	return solverFor(cfg).Solve(dist)
}
