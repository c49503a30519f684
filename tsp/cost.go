// Package tsp - cost model shared by exhaustive and heuristic solvers.
//
// This file provides the Euclidean distance, the CostModel abstraction and
// its two implementations:
//
//   - Inline - evaluates Distance on every lookup, no precomputation.
//   - Dense  - an n×n matrix built once per solve, O(1) lookups.
//
// Both implementations call the same Distance function on the same city
// pairs, so every lookup returns bit-identical values and the enumeration
// strategies pick the same tour whichever model they are given.
//
// Design:
//   - Index-based: Cost(i, j) takes registry indices (id-1), not ids.
//   - Read-only after construction; safe for concurrent readers.
//   - Tour sums are rounded to 1e-9 only when reported, never inside a
//     comparison, so ranking is done on raw sums.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// CostModel answers pairwise distances by registry index.
//
// Contract:
//   - Cost(i, j) ≥ 0, Cost(i, i) == 0, Cost(i, j) == Cost(j, i).
//   - 0 ≤ i, j < Len(); out-of-range indices panic.
type CostModel interface {
	Len() int
	Cost(i, j int) float64
}

// Distance returns the Euclidean distance between a and b:
// sqrt((ax-bx)² + (ay-by)²). It is pure, symmetric and zero for
// coincident points.
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	var (
		dx = a.X - b.X
		dy = a.Y - b.Y
	)

	return math.Sqrt(dx*dx + dy*dy)
}

// Inline computes every lookup on demand from the registry.
type Inline struct {
	reg *Registry
}

var _ CostModel = Inline{}

// NewInline wraps reg without precomputing anything.
func NewInline(reg *Registry) Inline { return Inline{reg: reg} }

// Len returns the number of cities.
func (m Inline) Len() int { return m.reg.Len() }

// Cost returns Distance(city i, city j).
func (m Inline) Cost(i, j int) float64 {
	return Distance(m.reg.cities[i], m.reg.cities[j])
}

// TourCost validates t against cm and returns its total length rounded to
// 1e-9. The tour is walked in order, summing Cost(t[k]-1, t[k+1]-1).
//
// Errors: ErrInvalidTour when t is not a closed tour over {1..cm.Len()}.
//
// Complexity: O(n).
func TourCost(cm CostModel, t Tour) (float64, error) {
	if err := t.Validate(cm.Len()); err != nil {
		return 0, err
	}

	return round1e9(tourCost(cm, t)), nil
}

// tourCost is the unchecked hot-path sum along ids; it performs no
// allocations and no validation.
func tourCost(cm CostModel, ids []int) float64 {
	var (
		sum  float64
		k    int
		last = len(ids) - 1
	)
	for k = 0; k < last; k++ {
		sum += cm.Cost(ids[k]-1, ids[k+1]-1)
	}

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
