// Package tsp - 2-opt local search on an open path.
//
// Reversing the segment T[i..k] of an open path only changes its two boundary
// edges; the inner edges are traversed backwards at the same (symmetric) cost:
//
//	Δ = w(T[i−1],T[k]) + w(T[i],T[k+1]) − w(T[i−1],T[i]) − w(T[k],T[k+1])
//
// where a term is dropped when i == 0 or k == n−1 (no edge beyond the end).
// Reversing the whole path (i == 0, k == n−1) never changes the cost and is skipped.
package tsp

import "github.com/katalvlaran/hamtour/hamming"

// TwoOpt runs deterministic first-improvement 2-opt on tour, in place.
//
// Candidates (i, k), 0 ≤ i < k ≤ n−1, are scanned in lexicographic order;
// each evaluation is one attempt against the budget. An improving reversal is
// applied at once and the scan continues. Passes repeat until one full pass
// applies nothing (StopLocalOptimum) or a budget is exhausted.
//
// Complexity: O(n²) evaluations per pass, O(k−i) per applied move.
func TwoOpt(items []hamming.Item, tour []int, opts Options) Result {
	mustPermutation(items, tour)

	codes := hamming.Codes(items)
	res := Result{InitialCost: pathCost(codes, tour), Stopped: StopTrivial}
	res.Cost = res.InitialCost
	if trivial(tour, opts) || len(tour) < 3 {
		// Two vertices: the only reversal is the whole path.
		return res
	}

	var (
		n     = len(tour)
		last  = n - 1
		b     = newBudget(opts)
		start = b.now()
		at    = func(p, q int) int { return hamming.Distance(codes[tour[p]], codes[tour[q]]) }
		i, k  int
		oldW  int
		newW  int
		ok    bool
	)

search:
	for {
		improved := false
		for i = 0; i < last; i++ {
			for k = i + 1; k <= last; k++ {
				if i == 0 && k == last {
					continue
				}
				if ok, res.Stopped = b.next(); !ok {
					break search
				}

				oldW, newW = 0, 0
				if i > 0 {
					oldW += at(i-1, i)
					newW += at(i-1, k)
				}
				if k < last {
					oldW += at(k, k+1)
					newW += at(i, k+1)
				}
				if newW < oldW {
					reverseInPlace(tour, i, k)
					res.Cost += int64(newW - oldW)
					res.Accepted++
					improved = true
				}
			}
		}
		if !improved {
			res.Stopped = StopLocalOptimum
			break
		}
	}

	res.Iterations = b.iters
	res.Elapsed = b.now().Sub(start)

	return res
}
