// Package tsp - randomized pairwise-swap local search on an open path.
package tsp

import (
	"github.com/katalvlaran/hamtour/hamming"
)

// Swap polishes tour in place with random pairwise exchanges.
//
// Each attempt draws two positions uniformly from [0, n). Equal positions
// consume the attempt and change nothing. Otherwise the items are swapped and
// the exact cost delta over the (at most four) edges adjacent to the two
// positions is computed; the swap is kept only if the delta is negative and
// reverted immediately otherwise.
//
// Stops when MaxIters attempts were made or TimeLimit elapsed, whichever
// comes first. Tours shorter than two and zero budgets return at once.
//
// Complexity: O(n) setup, O(1) per attempt.
func Swap(items []hamming.Item, tour []int, opts Options) Result {
	mustPermutation(items, tour)

	codes := hamming.Codes(items)
	res := Result{InitialCost: pathCost(codes, tour), Stopped: StopTrivial}
	res.Cost = res.InitialCost
	if trivial(tour, opts) {
		return res
	}

	var (
		n      = len(tour)
		rng    = rngFromSeed(opts.Seed)
		b      = newBudget(opts)
		start  = b.now()
		buf    [4]int
		edges  []int
		i, j   int
		before int
		delta  int
		ok     bool
	)
	for {
		if ok, res.Stopped = b.next(); !ok {
			break
		}

		i, j = rng.Intn(n), rng.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}

		edges = touched(n, i, j, &buf)
		before = sumEdges(codes, tour, edges)
		tour[i], tour[j] = tour[j], tour[i]
		delta = sumEdges(codes, tour, edges) - before
		if delta < 0 {
			res.Cost += int64(delta)
			res.Accepted++
			continue
		}
		// Not strictly better: revert.
		tour[i], tour[j] = tour[j], tour[i]
	}

	res.Iterations = b.iters
	res.Elapsed = b.now().Sub(start)

	return res
}
