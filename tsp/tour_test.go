package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tourbench/tsp"
	"github.com/stretchr/testify/require"
)

func TestTour_Validate(t *testing.T) {
	cases := []struct {
		name string
		tour tsp.Tour
		n    int
		want error
	}{
		{"ok", tsp.Tour{1, 3, 2, 4, 1}, 4, nil},
		{"ok n=2", tsp.Tour{1, 2, 1}, 2, nil},
		{"degenerate", tsp.Tour{1, 1}, 1, tsp.ErrDegenerateInstance},
		{"short", tsp.Tour{1, 2, 3, 1}, 4, tsp.ErrInvalidTour},
		{"not closed", tsp.Tour{1, 2, 3, 4, 2}, 4, tsp.ErrInvalidTour},
		{"wrong anchor", tsp.Tour{2, 1, 3, 4, 2}, 4, tsp.ErrInvalidTour},
		{"duplicate", tsp.Tour{1, 2, 2, 4, 1}, 4, tsp.ErrInvalidTour},
		{"out of range", tsp.Tour{1, 2, 5, 4, 1}, 4, tsp.ErrInvalidTour},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tour.Validate(tc.n)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTour_Helpers(t *testing.T) {
	tour := tsp.Tour{1, 2, 3, 4, 1}
	require.Equal(t, 4, tour.Len())
	require.Equal(t, 0, tsp.Tour{}.Len())
	require.Equal(t, []int{0, 1, 2, 3, 0}, tour.Indices())
	require.Equal(t, tsp.Tour{1, 4, 3, 2, 1}, tour.Reverse())
	require.Equal(t, tsp.Tour{1, 2, 3, 4, 1}, tour, "Reverse must not mutate")
	require.Equal(t, "1 → 2 → 3 → 4 → 1", tour.String())

	cp := tour.Clone()
	cp[1] = 9
	require.Equal(t, 2, tour[1])
}

func TestTour_ReverseHasSameCost(t *testing.T) {
	reg := randomRegistry(t, 8, seedDet)
	dn := tsp.NewDense(reg)
	tour := tsp.Tour{1, 5, 2, 8, 3, 7, 4, 6, 1}
	a, err := tsp.TourCost(dn, tour)
	require.NoError(t, err)
	b, err := tsp.TourCost(dn, tour.Reverse())
	require.NoError(t, err)
	require.InDelta(t, a, b, epsCost)
}
