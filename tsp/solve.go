// Package tsp - unified dispatcher for the tour solvers.
//
// Solve is the single core entry point: it builds the cost model the
// selected Strategy needs and routes to the search.
//
//	Strategy     Cost model   Search
//	BruteForce   Inline       SelectBest / SelectBestParallel
//	Exhaustive   Dense        SelectBest / SelectBestParallel
//	Greedy       Dense        NearestNeighbor
//	HeldKarp     Dense        HeldKarpExact
//
// Every call is independent: the cost model and the best-known tour live
// only for the duration of the call.
package tsp

import (
	"context"
	"slices"
)

// Solve validates reg and opts and runs the selected strategy.
//
// ctx is consulted only by the sharded enumeration (opts.Workers > 1);
// every other path runs to completion synchronously.
//
// Errors: ErrDegenerateInstance, ErrInvalidOptions, ErrTooManyCities,
// ErrUnsupportedStrategy, or ctx.Err() from a cancelled sharded scan.
//
// Complexity: per strategy, see the table above.
func Solve(ctx context.Context, reg *Registry, opts Options) (Result, error) {
	n, err := validateRegistry(reg)
	if err != nil {
		return Result{}, err
	}
	if err = validateOptions(opts, n); err != nil {
		return Result{}, err
	}

	var res Result
	switch opts.Strategy {
	case BruteForce:
		res, err = enumerate(ctx, NewInline(reg), opts)
	case Exhaustive:
		res, err = enumerate(ctx, NewDense(reg), opts)
	case Greedy:
		res = NearestNeighbor(NewDense(reg))
	case HeldKarp:
		res, err = HeldKarpExact(NewDense(reg))
	default:
		return Result{}, ErrUnsupportedStrategy
	}
	if err != nil {
		return Result{}, err
	}
	res.Strategy = opts.Strategy

	return res, nil
}

// enumerate routes an enumeration strategy to the eager, sharded or
// streaming selector.
func enumerate(ctx context.Context, cm CostModel, opts Options) (Result, error) {
	switch {
	case opts.Eager:
		return SelectBestFrom(cm, slices.Values(AllPermutations(cm.Len()))), nil
	case opts.Workers > 1:
		return SelectBestParallel(ctx, cm, opts.Workers)
	default:
		return SelectBest(cm), nil
	}
}
