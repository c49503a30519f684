package tsp_test

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/tourbench/tsp"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 6, 5: 24, 8: 5040, 11: 3628800}
	for n, want := range cases {
		require.Equal(t, want, tsp.Count(n), "n=%d", n)
	}
}

func TestCount_SaturatesOnOverflow(t *testing.T) {
	prev := tsp.Count(2)
	for n := 3; n <= 30; n++ {
		got := tsp.Count(n)
		require.Positive(t, got, "n=%d", n)
		require.GreaterOrEqual(t, got, prev, "n=%d", n)
		prev = got
	}
	require.Equal(t, math.MaxInt, tsp.Count(30))

	if strconv.IntSize == 64 {
		require.EqualValues(t, int64(2432902008176640000), tsp.Count(21))
		require.Equal(t, math.MaxInt, tsp.Count(22))
		require.Equal(t, math.MaxInt, tsp.Count(23))
	}
}

func TestAllPermutations_BeyondPreallocation(t *testing.T) {
	// 7! candidates exceed the preallocated capacity and must still all arrive.
	all := tsp.AllPermutations(8)
	require.Len(t, all, tsp.Count(8))
	require.Equal(t, tsp.Tour{1, 2, 3, 4, 5, 6, 7, 8, 1}, all[0])
}

func TestPermutations_Order4(t *testing.T) {
	// Swap-based recursion order over [2 3 4].
	want := []tsp.Tour{
		{1, 2, 3, 4, 1},
		{1, 2, 4, 3, 1},
		{1, 3, 2, 4, 1},
		{1, 3, 4, 2, 1},
		{1, 4, 3, 2, 1},
		{1, 4, 2, 3, 1},
	}
	require.Equal(t, want, tsp.AllPermutations(4))
}

func TestPermutations_Small(t *testing.T) {
	require.Empty(t, tsp.AllPermutations(1))
	require.Empty(t, tsp.AllPermutations(0))
	require.Equal(t, []tsp.Tour{{1, 2, 1}}, tsp.AllPermutations(2))
	require.Equal(t, []tsp.Tour{{1, 2, 3, 1}, {1, 3, 2, 1}}, tsp.AllPermutations(3))
}

func TestPermutations_DistinctValidAndMirrored(t *testing.T) {
	for n := 2; n <= 7; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			all := tsp.AllPermutations(n)
			require.Len(t, all, tsp.Count(n))

			seen := make(map[string]struct{}, len(all))
			for _, tour := range all {
				require.NoError(t, tour.Validate(n))
				seen[tour.String()] = struct{}{}
			}
			require.Len(t, seen, len(all), "every ordering exactly once")

			// Mirrors are not deduplicated: each reverse is also emitted.
			for _, tour := range all {
				_, ok := seen[tour.Reverse().String()]
				require.True(t, ok, "mirror of %v missing", tour)
			}
		})
	}
}

func TestPermutations_YieldsIndependentCopies(t *testing.T) {
	var kept []tsp.Tour
	for tour := range tsp.Permutations(4) {
		kept = append(kept, tour)
	}
	require.Equal(t, tsp.Tour{1, 2, 3, 4, 1}, kept[0])
	kept[0][1] = 99
	require.Equal(t, tsp.Tour{1, 2, 4, 3, 1}, kept[1])
}

func TestPermutations_EarlyBreak(t *testing.T) {
	var count int
	for range tsp.Permutations(8) {
		count++
		if count == 10 {
			break
		}
	}
	require.Equal(t, 10, count)
}
