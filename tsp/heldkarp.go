// Package tsp - Held–Karp dynamic program (optional extension).
//
// The enumeration strategies are brute force by definition. HeldKarpExact is
// offered next to them as a clearly separate, exact alternative that scales
// as O(n²·2ⁿ) instead of O((n-1)!·n). It reaches the same optimal cost; when
// several tours share that cost it may return a different one than the
// first-seen rule of SelectBest would.
//
// dp[mask][j] is the cheapest path that starts at index 0, visits exactly
// the indices in mask (bit 0 always set) and ends at j. The tour is closed
// by returning from the best last city to 0 and rebuilt from parent links.
package tsp

import "math"

// heldKarpMaxCities bounds the DP tables (2ⁿ·n float64 + int entries).
const heldKarpMaxCities = 20

// HeldKarpExact solves the instance exactly with the subset DP.
//
// Errors: ErrDegenerateInstance for n < 2, ErrTooManyCities for
// n > 20, ErrBadCoordinate when every closing edge is infinite.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func HeldKarpExact(cm CostModel) (Result, error) {
	var n = cm.Len()
	if n < 2 {
		return Result{}, ErrDegenerateInstance
	}
	if n > heldKarpMaxCities {
		return Result{}, ErrTooManyCities
	}

	var (
		full   = 1 << n
		all    = full - 1
		dp     = make([]float64, full*n)
		parent = make([]int, full*n)
		i      int
	)
	for i = range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[1*n+0] = 0

	var (
		mask, prev int
		j, k       int
		cand       float64
	)
	for mask = 1; mask <= all; mask += 2 { // odd masks contain the anchor
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + cm.Cost(k, j)
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	var (
		best = math.Inf(1)
		last = -1
	)
	for j = 1; j < n; j++ {
		cand = dp[all*n+j] + cm.Cost(j, 0)
		if cand < best {
			best = cand
			last = j
		}
	}

	if last < 0 {
		// Only reachable when distances overflow to +Inf.
		return Result{}, ErrBadCoordinate
	}

	var tour = make(Tour, n+1)
	tour[0], tour[n] = AnchorID, AnchorID
	mask, j = all, last
	for i = n - 1; i >= 1; i-- {
		tour[i] = j + 1
		k = parent[mask*n+j]
		mask ^= 1 << j
		j = k
	}

	return Result{Tour: tour, Cost: round1e9(best), Candidates: 1}, nil
}
