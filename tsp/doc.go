// Package tsp computes closed tours over a fixed set of 2-D cities that
// minimize total Euclidean length.
//
// It compares two families of solvers on the same instance:
//
//   - Enumeration (BruteForce, Exhaustive) scores all (n-1)! tours
//     anchored at city 1 and keeps the cheapest, first-seen on ties.
//     Complexity O((n-1)!·n); memory O(n) streaming, O((n-1)!·n) with
//     Options.Eager. Exact, practical up to n≈11.
//   - NearestNeighbor (Greedy) walks to the closest unvisited city.
//     Complexity O(n²). Never cheaper than the enumeration result.
//
// HeldKarpExact is an optional O(n²·2ⁿ) exact extension; it is not used by
// the enumeration strategies.
//
// Cities are identified by ids 1..n; a Registry stores id i+1 at index i and
// every CostModel is indexed by that position. Tours are []int of ids,
// closed on the anchor: [1, …, 1].
//
// The package performs no I/O and does not log. Reading instances and
// writing tour files live in package tsplib.
package tsp
