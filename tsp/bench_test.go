// Package tsp_test - benchmarks for the enumeration and greedy solvers.
//
// Policy:
//   - Deterministic instances (RandomCities with seedDet).
//   - Inputs built outside the timer; only the search is measured.
package tsp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/tourbench/tsp"
)

// BenchmarkSelectBest compares the inline and precomputed cost models.
func BenchmarkSelectBest(b *testing.B) {
	const n = 9
	reg := randomRegistry(b, n, seedDet)
	models := []struct {
		name string
		cm   tsp.CostModel
	}{
		{"inline", tsp.NewInline(reg)},
		{"dense", tsp.NewDense(reg)},
	}
	for _, m := range models {
		b.Run(m.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = tsp.SelectBest(m.cm)
			}
		})
	}
}

// BenchmarkSelectBestParallel measures the sharded scan at several widths.
func BenchmarkSelectBestParallel(b *testing.B) {
	const n = 10
	dn := tsp.NewDense(randomRegistry(b, n, seedDet))
	for _, w := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := tsp.SelectBestParallel(context.Background(), dn, w); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkNearestNeighbor measures the O(n²) greedy walk.
func BenchmarkNearestNeighbor(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		dn := tsp.NewDense(randomRegistry(b, n, seedDet))
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = tsp.NearestNeighbor(dn)
			}
		})
	}
}

// BenchmarkHeldKarpExact measures the DP extension at a size enumeration
// cannot reach.
func BenchmarkHeldKarpExact(b *testing.B) {
	dn := tsp.NewDense(randomRegistry(b, 14, seedDet))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.HeldKarpExact(dn); err != nil {
			b.Fatal(err)
		}
	}
}
