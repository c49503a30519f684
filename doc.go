// Package tourbench solves small Euclidean travelling-salesman instances
// and compares an exact search against a greedy one.
//
// What is inside?
//
//   - tsp: cities, cost models, the (n-1)! permutation enumerator,
//     exhaustive selection (sequential and sharded), the nearest-neighbor
//     heuristic and a Held–Karp reference.
//   - tsplib: TSPLIB-style coordinate and tour files.
//   - solver: file-to-file facade with structured logging and metrics hooks.
//   - config: YAML settings, validation and logger construction.
//   - metrics: Prometheus collectors and textfile export.
//   - cmd/tourbench: the command line (solve, compare, verify, generate).
//
// Every tour starts and ends at city 1. Exact search is factorial in the
// number of cities; past a dozen cities use the greedy strategy or cap the
// exact ones with MaxCities.
//
// Quick example:
//
//	reg, _ := tsp.NewRegistry(cities)
//	res, _ := tsp.Solve(ctx, reg, tsp.Options{Strategy: tsp.BruteForce})
//	fmt.Println(res.Tour, res.Cost)
//
//	go install github.com/katalvlaran/tourbench/cmd/tourbench@latest
package tourbench
