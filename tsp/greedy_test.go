package tsp_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tourbench/tsp"
	"github.com/stretchr/testify/require"
)

func TestNearestNeighbor_UnitSquare(t *testing.T) {
	res := tsp.NearestNeighbor(tsp.NewDense(unitSquare(t)))
	require.Equal(t, tsp.Tour{1, 2, 3, 4, 1}, res.Tour)
	require.Equal(t, 4.0, res.Cost)
	require.Equal(t, 1, res.Candidates)
}

func TestNearestNeighbor_Colinear(t *testing.T) {
	res := tsp.NearestNeighbor(tsp.NewDense(colinear3(t)))
	require.Equal(t, tsp.Tour{1, 2, 3, 1}, res.Tour)
	require.Equal(t, 4.0, res.Cost)
}

func TestNearestNeighbor_TwoCities(t *testing.T) {
	reg := mustRegistry(t, [2]float64{0, 0}, [2]float64{3, 4})
	res := tsp.NearestNeighbor(tsp.NewDense(reg))
	require.Equal(t, tsp.Tour{1, 2, 1}, res.Tour)
	require.Equal(t, 10.0, res.Cost)
	require.Equal(t, tsp.SelectBest(tsp.NewDense(reg)).Cost, res.Cost)
}

func TestNearestNeighbor_TieBreakStableFirst(t *testing.T) {
	// From the anchor, cities 3 and 4 are both at distance 1; 3 comes
	// first in index order and must be chosen.
	reg := mustRegistry(t, [2]float64{0, 0}, [2]float64{0, 2}, [2]float64{0, 1}, [2]float64{0, -1})
	res := tsp.NearestNeighbor(tsp.NewDense(reg))
	require.Equal(t, tsp.Tour{1, 3, 2, 4, 1}, res.Tour)
	require.Equal(t, 6.0, res.Cost)
}

func TestNearestNeighbor_Degenerate(t *testing.T) {
	reg := mustRegistry(t, [2]float64{5, 5})
	require.Equal(t, tsp.Result{}, tsp.NearestNeighbor(tsp.NewDense(reg)))
}

func TestNearestNeighbor_NeverBeatsExhaustive(t *testing.T) {
	for n := 2; n <= 8; n++ {
		for seed := int64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				dn := tsp.NewDense(randomRegistry(t, n, seed))
				greedy := tsp.NearestNeighbor(dn)
				require.NoError(t, greedy.Tour.Validate(n))

				c, err := tsp.TourCost(dn, greedy.Tour)
				require.NoError(t, err)
				require.Equal(t, greedy.Cost, c)

				require.GreaterOrEqual(t, greedy.Cost, tsp.SelectBest(dn).Cost)
			})
		}
	}
}

func TestNearestNeighbor_LargeInstanceStaysValid(t *testing.T) {
	const n = 500
	res := tsp.NearestNeighbor(tsp.NewDense(randomRegistry(t, n, seedDet)))
	require.NoError(t, res.Tour.Validate(n))
	require.Greater(t, res.Cost, 0.0)
}
