// Package tsp - permutation enumerator.
//
// Every closed tour anchored at city 1 corresponds to one ordering of the
// remaining ids {2..n}, so an instance has exactly (n-1)! candidates.
// Orderings are produced by the recursive swap scheme
//
//	walk(left):
//	  if left == right: emit
//	  for i := left..right:
//	    swap(left, i); walk(left+1); swap(left, i)
//
// over a single working buffer [1, 2, …, n, 1]; the two swaps restore the
// buffer, so each subtree sees the same starting state. Mirror tours (a
// tour and its reverse) are both emitted: they are distinct sequences even
// though their costs are equal, and the exhaustive selector's first-seen
// rule decides which of the two is kept.
//
// Memory: streaming keeps a single O(n) buffer alive; AllPermutations
// materializes O((n-1)!·n) ids and exists for small instances and tests.
package tsp

import (
	"iter"
	"math"
)

// maxPermutationHint caps the slice preallocated by AllPermutations.
const maxPermutationHint = 1 << 12

// Count returns the number of candidate tours for n cities, (n-1)!.
// It returns 0 for n < 1 and 1 for n == 1. Values that do not fit in an
// int (n ≥ 22 on 64-bit platforms) saturate at math.MaxInt.
func Count(n int) int {
	if n < 1 {
		return 0
	}
	var (
		c = 1
		k int
	)
	for k = 2; k < n; k++ {
		if c > math.MaxInt/k {
			return math.MaxInt
		}
		c *= k
	}

	return c
}

// Permutations streams every closed tour over n cities anchored at city 1,
// in enumeration order. Each yielded Tour is a fresh copy that the caller
// may keep. Breaking out of the range loop stops the enumeration.
//
// For n < 2 nothing is yielded.
func Permutations(n int) iter.Seq[Tour] {
	return func(yield func(Tour) bool) {
		if n < 2 {
			return
		}
		var buf = initialTour(n)
		walk(buf[1:n], 0, func() bool {
			return yield(Tour(buf).Clone())
		})
	}
}

// AllPermutations materializes the full candidate list in enumeration order.
//
// Complexity: O((n-1)!·n) time and memory.
func AllPermutations(n int) []Tour {
	var out = make([]Tour, 0, min(Count(n), maxPermutationHint))
	for t := range Permutations(n) {
		out = append(out, t)
	}

	return out
}

// initialTour returns the closed buffer [1, 2, …, n, 1].
func initialTour(n int) []int {
	var (
		buf = make([]int, n+1)
		k   int
	)
	for k = 0; k < n; k++ {
		buf[k] = k + 1
	}
	buf[n] = AnchorID

	return buf
}

// walk permutes perm[left:] in place and calls visit at every leaf while
// perm holds the current ordering. It returns false as soon as visit does,
// after restoring perm.
func walk(perm []int, left int, visit func() bool) bool {
	var right = len(perm) - 1
	if left >= right {
		return visit()
	}

	var (
		i  int
		ok bool
	)
	for i = left; i <= right; i++ {
		perm[left], perm[i] = perm[i], perm[left]
		ok = walk(perm, left+1, visit)
		perm[left], perm[i] = perm[i], perm[left]
		if !ok {
			return false
		}
	}

	return true
}
