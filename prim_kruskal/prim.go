// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from vertex 0 with a parallel frontier scan followed by a single-threaded selection.
package prim_kruskal

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/hamming"
)

// unreached is larger than any Hamming distance.
const unreached = hamming.MaxDistance + 1

// frontier is the mutable Prim state. It is owned by the goroutine running
// Prim; scan workers only read codes and pending and write disjoint ranges of dist.
type frontier struct {
	codes   []uint64 // immutable fingerprints, codes[v] for vertex v
	pending []int    // unvisited vertices, ascending id
	key     []int    // key[v] = min distance from v to the tree so far
	from    []int    // from[v] = visited endpoint realizing key[v]
	dist    []int    // scratch: dist[k] = distance(last, pending[k]) for the current scan
}

// Prim computes the minimum spanning tree of items by growing outwards from vertex 0.
//
// Steps:
//  1. If len(items) < 2 → (nil, false).
//  2. Seed: visited = {0}, pending = {1..n-1}, every key = unreached.
//  3. Scan: compute distance(last, p) for every pending p, where last is the
//     vertex attached most recently (vertex 0 in the first round). Chunks of
//     opts.Grain pending vertices run concurrently on up to opts.Workers goroutines.
//  4. Barrier: wait for the whole scan.
//  5. Select (single goroutine): fold the scan into key/from, pick the pending
//     vertex with the smallest key (lowest id on ties), attach it under from[v],
//     remove it from pending and make it last.
//  6. Repeat 3–5 until pending is empty.
//
// The key array holds, for each pending vertex, the minimum over all visited
// endpoints, so step 5 selects the same global minimum a full (visited × pending)
// scan would.
//
// Complexity: O(n²) time, O(n) memory.
func Prim(items []hamming.Item, opts ...Option) (*core.Tree, bool) {
	n := len(items)
	// 1. Nothing to span.
	if n < 2 {
		return nil, false
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Seed the frontier.
	f := &frontier{
		codes:   hamming.Codes(items),
		pending: make([]int, 0, n-1),
		key:     make([]int, n),
		from:    make([]int, n),
		dist:    make([]int, n-1),
	}
	for v := 0; v < n; v++ {
		f.key[v] = unreached
		f.from[v] = -1
		if v != core.Root {
			f.pending = append(f.pending, v)
		}
	}

	t := core.NewTree(n)
	last := core.Root
	for len(f.pending) > 0 {
		// 3–4. Scan and barrier.
		f.scan(last, o.Workers, o.Grain)

		// 5. Select and mutate.
		k := f.selectMin(last)
		v := f.pending[k]
		if err := t.AddEdge(f.from[v], v, f.key[v]); err != nil {
			panic(err)
		}
		f.remove(k)
		last = v
	}

	t.MustValidate()

	return t, true
}

// scan fills dist[0:len(pending)] with distances from last to every pending
// vertex. Small frontiers are scanned inline; larger ones are split into
// grain-sized chunks evaluated on an errgroup bounded by workers. The call
// returns only after every chunk has finished.
func (f *frontier) scan(last, workers, grain int) {
	var (
		m    = len(f.pending)
		base = f.codes[last]
	)
	if workers <= 1 || m <= grain {
		f.scanRange(base, 0, m)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < m; lo += grain {
		lo, hi := lo, min(lo+grain, m)
		g.Go(func() error {
			f.scanRange(base, lo, hi)
			return nil
		})
	}
	// Tasks never fail; Wait is the barrier.
	_ = g.Wait()
}

// scanRange evaluates pending[lo:hi]. Pure reads plus writes to dist[lo:hi].
func (f *frontier) scanRange(base uint64, lo, hi int) {
	for k := lo; k < hi; k++ {
		f.dist[k] = hamming.Distance(base, f.codes[f.pending[k]])
	}
}

// selectMin folds the last scan into key/from and returns the position in
// pending of the closest vertex. Strict comparisons keep the earliest parent and
// the lowest vertex id on ties.
func (f *frontier) selectMin(last int) int {
	best := -1
	bestKey := unreached + 1
	for k, v := range f.pending {
		if d := f.dist[k]; d < f.key[v] {
			f.key[v] = d
			f.from[v] = last
		}
		if f.key[v] < bestKey {
			best, bestKey = k, f.key[v]
		}
	}

	return best
}

// remove deletes pending[k] preserving ascending order.
func (f *frontier) remove(k int) {
	copy(f.pending[k:], f.pending[k+1:])
	f.pending = f.pending[:len(f.pending)-1]
}
