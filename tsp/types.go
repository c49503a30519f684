package tsp

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the tsp package. Callers should compare with
// errors.Is; the package never wraps them with additional context.
var (
	// ErrDegenerateInstance is returned when an instance has fewer than two cities.
	ErrDegenerateInstance = errors.New("tsp: instance needs at least two cities")

	// ErrNonContiguousIDs is returned when city ids do not form exactly {1..n}.
	ErrNonContiguousIDs = errors.New("tsp: city ids must form the contiguous range 1..n")

	// ErrBadCoordinate is returned when a city coordinate is NaN or ±Inf.
	ErrBadCoordinate = errors.New("tsp: city coordinate is not finite")

	// ErrUnsupportedStrategy is returned for an unknown Strategy value or name.
	ErrUnsupportedStrategy = errors.New("tsp: unsupported strategy")

	// ErrTooManyCities is returned when an instance exceeds Options.MaxCities
	// (or the hard memory limit of the Held–Karp extension).
	ErrTooManyCities = errors.New("tsp: too many cities for the selected strategy")

	// ErrInvalidOptions is returned when Options carry negative limits.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrInvalidTour is returned when a tour is not a closed Hamiltonian
	// cycle over {1..n} anchored at city 1.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// AnchorID is the id of the fixed start/end city of every tour.
const AnchorID = 1

// Strategy selects the search performed by Solve.
type Strategy int

const (
	// BruteForce enumerates every tour and evaluates each edge inline
	// with Distance (no precomputation).
	BruteForce Strategy = iota

	// Exhaustive enumerates every tour and looks edges up in a
	// precomputed Dense cost matrix. Same result as BruteForce.
	Exhaustive

	// Greedy builds one tour with the nearest-neighbor heuristic over a
	// Dense cost matrix.
	Greedy

	// HeldKarp is an optional extension: the O(n²·2ⁿ) subset dynamic
	// program. It is exact like Exhaustive but not enumeration based, so
	// among equal-cost optima it may return a different tour.
	HeldKarp
)

// String returns the canonical lowercase name of s.
func (s Strategy) String() string {
	switch s {
	case BruteForce:
		return "bruteforce"
	case Exhaustive:
		return "exhaustive"
	case Greedy:
		return "greedy"
	case HeldKarp:
		return "heldkarp"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// "dynamic" is accepted as an alias of Exhaustive and "nearest" of Greedy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bruteforce", "brute-force", "brute":
		return BruteForce, nil
	case "exhaustive", "dynamic", "matrix":
		return Exhaustive, nil
	case "greedy", "nearest", "nearest-neighbor":
		return Greedy, nil
	case "heldkarp", "held-karp":
		return HeldKarp, nil
	default:
		return 0, ErrUnsupportedStrategy
	}
}

// Options configures Solve.
//
// Fields:
//   - Strategy  - which search to run.
//   - Workers   - shard count for the enumeration strategies; 0 or 1 runs
//     the single-threaded fold. Ignored by Greedy and HeldKarp.
//   - MaxCities - refuse enumeration/DP instances larger than this;
//     0 means unlimited. Ignored by Greedy.
//   - Eager     - materialize all permutations before scoring
//     (O((n-1)!·n) memory) instead of streaming them.
type Options struct {
	Strategy  Strategy
	Workers   int
	MaxCities int
	Eager     bool
}

// DefaultOptions returns the single-threaded streaming brute-force setup.
func DefaultOptions() Options {
	return Options{Strategy: BruteForce, Workers: 1}
}

// Result holds the outcome of a solver run (the best-known tour).
type Result struct {
	// Tour is the closed sequence of city ids, Tour[0]==Tour[n]==AnchorID.
	Tour Tour

	// Cost is the total Euclidean length of Tour, rounded to 1e-9.
	Cost float64

	// Candidates is the number of complete tours scored
	// ((n-1)! for enumeration, 1 for Greedy and HeldKarp).
	Candidates int

	// Strategy records which search produced the result.
	Strategy Strategy
}
