// Package tsp - exhaustive tour selector.
//
// SelectBest scores every candidate produced by the permutation enumerator
// and keeps the cheapest one. The scan is a fold over the candidate stream:
//
//	best := first candidate
//	for each later candidate c:
//	    if cost(c) < cost(best) { best = c }
//
// Replacement is strictly-less-than, so among equal-cost tours the one
// produced first wins. There is no pruning and no memoization: the search is
// brute force and its running time is Θ((n-1)!·n).
//
// SelectBestParallel splits the same enumeration into contiguous shards,
// folds each shard independently and reduces the shard winners in
// enumeration order with the same strict comparison. Because the shards
// partition the sequential order without reordering it, the reduced result
// is identical (tour and cost) to the single-threaded fold.
package tsp

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"
)

// cancelCheckEvery is how many candidates a shard scores between context checks.
const cancelCheckEvery = 1 << 12

// fold is the comparison-and-replace accumulator of one scan.
// It is local to a single scan and never shared between goroutines.
type fold struct {
	best []int
	cost float64
	seen int
}

// offer scores cand and keeps a copy of it iff it is the first candidate or
// strictly cheaper than the current best.
func (f *fold) offer(cm CostModel, cand []int) {
	var c = tourCost(cm, cand)
	if f.seen == 0 || c < f.cost {
		f.best = append(f.best[:0], cand...)
		f.cost = c
	}
	f.seen++
}

// merge folds a later shard into f, preserving first-seen on ties.
func (f *fold) merge(later fold) {
	if later.seen == 0 {
		return
	}
	if f.seen == 0 || later.cost < f.cost {
		f.best = later.best
		f.cost = later.cost
	}
	f.seen += later.seen
}

func (f *fold) result() Result {
	return Result{
		Tour:       Tour(f.best),
		Cost:       round1e9(f.cost),
		Candidates: f.seen,
	}
}

// SelectBest enumerates all (n-1)! tours of cm in streaming mode and returns
// the minimum-cost one (first-seen wins ties). Peak memory is O(n).
//
// For cm.Len() < 2 it returns the zero Result.
//
// Complexity: O((n-1)!·n) time, O(n) space.
func SelectBest(cm CostModel) Result {
	var (
		n = cm.Len()
		f fold
	)
	if n < 2 {
		return Result{}
	}

	var buf = initialTour(n)
	walk(buf[1:n], 0, func() bool {
		f.offer(cm, buf)
		return true
	})

	return f.result()
}

// SelectBestFrom folds an arbitrary candidate source, e.g. a materialized
// list from AllPermutations. Candidates are assumed valid for cm.
//
// Complexity: O(k·n) for k candidates.
func SelectBestFrom(cm CostModel, candidates iter.Seq[Tour]) Result {
	var f fold
	for t := range candidates {
		f.offer(cm, t)
	}

	return f.result()
}

// SelectBestParallel is SelectBest split over up to workers goroutines.
// Shard k covers the candidates whose second city is the k-th choice of
// the top-level swap loop; shard winners are reduced in k order.
//
// workers ≤ 1 or n < 3 falls back to SelectBest. Cancelling ctx aborts the
// scan and returns ctx.Err().
//
// Complexity: O((n-1)!·n / workers) wall time, O(workers·n) space.
func SelectBestParallel(ctx context.Context, cm CostModel, workers int) (Result, error) {
	var n = cm.Len()
	if workers <= 1 || n < 3 {
		return SelectBest(cm), nil
	}

	var (
		shards = n - 1 // one shard per top-level choice
		folds  = make([]fold, shards)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for k := 0; k < shards; k++ {
		g.Go(func() error {
			return scanShard(gctx, cm, k, &folds[k])
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total fold
	for k := range folds {
		total.merge(folds[k])
	}

	return total.result(), nil
}

// scanShard replays the top-level step "swap(0, k)" on a private buffer and
// enumerates the remaining positions exactly as walk would.
func scanShard(ctx context.Context, cm CostModel, k int, f *fold) error {
	var (
		n    = cm.Len()
		buf  = initialTour(n)
		perm = buf[1:n]
		err  error
	)
	perm[0], perm[k] = perm[k], perm[0]

	walk(perm, 1, func() bool {
		if f.seen%cancelCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return false
			}
		}
		f.offer(cm, buf)
		return true
	})

	return err
}
