// Package tsp - unified dispatcher and budget bookkeeping for the refiners.
package tsp

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hamtour/hamming"
)

// budget tracks both stop conditions of a run.
type budget struct {
	maxIters int
	deadline time.Time
	now      func() time.Time
	done     <-chan struct{}
	iters    int
}

// newBudget starts the clock for opts.
func newBudget(opts Options) *budget {
	now := opts.now
	if now == nil {
		now = time.Now
	}

	b := &budget{
		maxIters: opts.MaxIters,
		deadline: now().Add(opts.TimeLimit),
		now:      now,
	}
	if opts.Ctx != nil {
		b.done = opts.Ctx.Done()
	}

	return b
}

// next accounts for one attempted move. It reports false, with the reason,
// once either budget is exhausted or the context is done; the clock is read
// exactly once per call.
func (b *budget) next() (bool, StopReason) {
	if b.iters >= b.maxIters {
		return false, StopIterations
	}
	if !b.now().Before(b.deadline) {
		return false, StopTimeLimit
	}
	select {
	case <-b.done:
		return false, StopCancelled
	default:
	}
	b.iters++

	return true, 0
}

// trivial reports whether a run can do no work at all.
func trivial(tour []int, opts Options) bool {
	return len(tour) < 2 || opts.MaxIters <= 0 || opts.TimeLimit <= 0
}

// mustPermutation panics when tour is not a permutation of the item ids.
func mustPermutation(items []hamming.Item, tour []int) {
	if err := ValidatePermutation(tour, len(items)); err != nil {
		panic(err)
	}
}

// Refine runs the algorithm selected by opts.Algo on tour, in place.
//
// Contract:
//   - tour is a permutation of 0..len(items)-1 (programming fault otherwise).
//   - Result.Cost ≤ Result.InitialCost.
//   - Returns ErrUnsupportedAlgorithm for an unknown opts.Algo, before touching tour.
func Refine(items []hamming.Item, tour []int, opts Options) (Result, error) {
	switch opts.Algo {
	case RandomSwap:
		return Swap(items, tour, opts), nil
	case TwoOptOnly:
		return TwoOpt(items, tour, opts), nil
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(opts.Algo))
	}
}
