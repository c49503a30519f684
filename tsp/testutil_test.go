// Package tsp_test provides lightweight helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tourbench/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// epsCost is the tolerance for comparing costs produced by different
	// summation orders (both sides are already rounded to 1e-9).
	epsCost = 1e-9

	// seedDet is a deterministic seed for generated instances.
	seedDet = int64(42)
)

// mustRegistry builds a registry from (x, y) pairs, assigning ids 1..n in order.
func mustRegistry(t testing.TB, pts ...[2]float64) *tsp.Registry {
	t.Helper()
	var cities = make([]tsp.City, len(pts))
	for i, p := range pts {
		cities[i] = tsp.City{ID: i + 1, X: p[0], Y: p[1]}
	}
	reg, err := tsp.NewRegistry(cities)
	require.NoError(t, err)

	return reg
}

// randomRegistry builds a reproducible n-city registry on a 100×100 square.
func randomRegistry(t testing.TB, n int, seed int64) *tsp.Registry {
	t.Helper()
	reg, err := tsp.NewRegistry(tsp.RandomCities(n, seed, 100, 100))
	require.NoError(t, err)

	return reg
}

// unitSquare is the 4-city square (0,0) (0,1) (1,1) (1,0).
func unitSquare(t testing.TB) *tsp.Registry {
	return mustRegistry(t, [2]float64{0, 0}, [2]float64{0, 1}, [2]float64{1, 1}, [2]float64{1, 0})
}

// colinear3 is (0,0) (1,0) (2,0).
func colinear3(t testing.TB) *tsp.Registry {
	return mustRegistry(t, [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0})
}
