// Package tsp - tour utilities shared by exhaustive and heuristic solvers.
//
// A Tour is an ordered sequence of city ids (not indices) of length n+1,
// closed on the anchor: t[0] == t[n] == AnchorID, and each id of {1..n}
// appears exactly once among t[0..n-1]. Ids are plain ints, so instances
// with ten or more cities need no special handling.
//
// Provided helpers:
//   - Len / Clone / Indices / Reverse: structural accessors.
//   - Validate: enforce Hamiltonian-cycle invariants.
//   - String: compact printable form for logs and examples.
package tsp

import (
	"slices"
	"strconv"
	"strings"
)

// Tour is a closed sequence of city ids starting and ending at AnchorID.
type Tour []int

// Len returns the number of distinct cities n (the closing anchor is not
// counted). It returns 0 for an empty tour.
func (t Tour) Len() int {
	if len(t) == 0 {
		return 0
	}

	return len(t) - 1
}

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour { return slices.Clone(t) }

// Indices converts ids to registry indices (id-1) in a fresh slice.
func (t Tour) Indices() []int {
	var out = make([]int, len(t))
	for k, id := range t {
		out[k] = id - 1
	}

	return out
}

// Reverse returns the mirror tour: same anchor, interior traversed
// backwards. For a symmetric cost model it has the same cost as t.
func (t Tour) Reverse() Tour {
	var out = t.Clone()
	if len(out) > 2 {
		slices.Reverse(out[1 : len(out)-1])
	}

	return out
}

// Validate enforces:
//
//	len(t) == n+1, t[0] == t[n] == AnchorID,
//	each id in {1..n} appears exactly once in t[0..n-1].
//
// Errors: ErrDegenerateInstance for n < 2, ErrInvalidTour otherwise.
//
// Complexity: O(n) time, O(n) space.
func (t Tour) Validate(n int) error {
	if n < 2 {
		return ErrDegenerateInstance
	}
	if len(t) != n+1 || t[0] != AnchorID || t[n] != AnchorID {
		return ErrInvalidTour
	}

	var (
		seen = make([]bool, n+1)
		k    int
		id   int
	)
	for k = 0; k < n; k++ {
		id = t[k]
		if id < 1 || id > n || seen[id] {
			return ErrInvalidTour
		}
		seen[id] = true
	}

	return nil
}

// String renders the tour as "1 → 3 → 2 → 1".
func (t Tour) String() string {
	var b strings.Builder
	for k, id := range t {
		if k > 0 {
			b.WriteString(" → ")
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}
