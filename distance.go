package paretoti

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceMetric measures the separation between two archetype coordinate
// vectors. Implementations must be pure: same inputs, same output.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance. It is the metric
// archetype alignment uses unless configured otherwise.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// SquaredEuclideanMetric computes the squared Euclidean distance. Aligning on
// squared distances penalizes large archetype displacements more heavily than
// plain Euclidean, so the minimum-cost matching may differ between the two.
type SquaredEuclideanMetric struct{}

func (SquaredEuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// CosineMetric computes the cosine distance: 1 - cosine_similarity.
// For two zero vectors, the result is NaN (0/0).
type CosineMetric struct{}

func (CosineMetric) Distance(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	return 1.0 - dot/math.Sqrt(normA*normB)
}

// ArchetypeDistances builds the pairwise distance matrix between two archetype
// sets. arc1 and arc2 are D×K matrices whose columns are archetype coordinate
// vectors; entry (i, j) of the result is the distance from archetype i of arc1
// to archetype j of arc2. A nil metric defaults to EuclideanMetric.
//
// Both sets must have the same number of archetypes and the same
// dimensionality; mismatched or empty inputs fail with ErrShapeMismatch.
// The returned matrix is freshly allocated and never mutated afterwards.
func ArchetypeDistances(arc1, arc2 mat.Matrix, metric DistanceMetric) (*mat.Dense, error) {
	if arc1 == nil || arc2 == nil {
		return nil, fmt.Errorf("%w: nil archetype matrix", ErrShapeMismatch)
	}
	d1, k1 := arc1.Dims()
	d2, k2 := arc2.Dims()
	if k1 != k2 {
		return nil, fmt.Errorf("%w: arc1 has %d archetypes, arc2 has %d", ErrShapeMismatch, k1, k2)
	}
	if d1 != d2 {
		return nil, fmt.Errorf("%w: arc1 has %d dimensions, arc2 has %d", ErrShapeMismatch, d1, d2)
	}
	if k1 == 0 {
		return nil, fmt.Errorf("%w: empty archetype sets", ErrShapeMismatch)
	}
	if metric == nil {
		metric = EuclideanMetric{}
	}

	cols2 := make([][]float64, k2)
	for j := range cols2 {
		cols2[j] = mat.Col(nil, j, arc2)
	}

	dist := mat.NewDense(k1, k1, nil)
	a := make([]float64, d1)
	for i := 0; i < k1; i++ {
		mat.Col(a, i, arc1)
		for j, b := range cols2 {
			dist.Set(i, j, metric.Distance(a, b))
		}
	}
	return dist, nil
}
