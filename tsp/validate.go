// Package tsp - validation helpers used by the Solve dispatcher.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

// validateOptions checks Options against the instance size n.
//
// Complexity: O(1).
func validateOptions(opts Options, n int) error {
	if opts.Workers < 0 || opts.MaxCities < 0 {
		return ErrInvalidOptions
	}

	switch opts.Strategy {
	case BruteForce, Exhaustive, HeldKarp:
		if opts.MaxCities > 0 && n > opts.MaxCities {
			return ErrTooManyCities
		}
	case Greedy:
		// Polynomial; MaxCities does not apply.
	default:
		return ErrUnsupportedStrategy
	}

	return nil
}

// validateRegistry rejects nil and degenerate (n < 2) registries.
//
// Complexity: O(1).
func validateRegistry(reg *Registry) (int, error) {
	if reg == nil || reg.Len() < 2 {
		return 0, ErrDegenerateInstance
	}

	return reg.Len(), nil
}
