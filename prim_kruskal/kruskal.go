// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm
// over the complete Hamming graph of a fingerprint collection.
package prim_kruskal

import (
	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/hamming"
)

// pair is one unordered vertex pair u < v. uint32 halves the bucket footprint.
type pair struct {
	u, v uint32
}

// Kruskal computes the minimum spanning tree of items, rooted at vertex 0.
// It uses a disjoint-set (union-find) data structure with path compression and union by size.
//
// Steps:
//  1. If len(items) < 2 → (nil, false): there is no tree to build.
//  2. Enumerate every pair (u, v), u < v, once and append it to the bucket of its
//     Hamming weight. Buckets are filled in enumeration order, which is the tie-break.
//  3. Walk the buckets in ascending weight; accept (u, v) iff Union(u, v) merges two
//     sets (this covers both joining two fragments and attaching a new vertex);
//     skip it otherwise, since it would close a cycle.
//  4. Once n-1 edges are accepted, stop.
//  5. Orient the accepted undirected edges away from vertex 0 (see orient).
//
// Complexity: O(n² + α(n)·n²) time, O(n²) memory for the buckets.
func Kruskal(items []hamming.Item) (*core.Tree, bool) {
	n := len(items)
	// 1. Nothing to span.
	if n < 2 {
		return nil, false
	}

	// 2. Counting sort by weight: weights live in [0, hamming.MaxDistance].
	var (
		buckets [hamming.MaxDistance + 1][]pair
		u, v    int
		w       int
	)
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			w = hamming.Between(items, u, v)
			buckets[w] = append(buckets[w], pair{uint32(u), uint32(v)})
		}
	}

	// 3. Accept edges in ascending weight order.
	var (
		uf       = NewUnionFind(n)
		accepted = make([]core.Edge, 0, n-1)
	)
scan:
	for w = range buckets {
		for _, p := range buckets[w] {
			if !uf.Union(int(p.u), int(p.v)) {
				// Same set already: the edge would create a cycle.
				continue
			}
			accepted = append(accepted, core.Edge{From: int(p.u), To: int(p.v), Weight: w})
			// 4. Spanning tree complete.
			if len(accepted) == n-1 {
				break scan
			}
		}
		// Release the bucket early; large inputs hold most memory here.
		buckets[w] = nil
	}

	// The complete graph is connected, so fewer edges means a broken union-find.
	if len(accepted) != n-1 {
		panic("prim_kruskal: Kruskal accepted fewer than n-1 edges on a complete graph")
	}

	// 5. Direct the edges parent→child from the root.
	t := orient(n, accepted)
	t.MustValidate()

	return t, true
}

// orient turns an undirected spanning edge set into a rooted tree.
//
// A breadth-first sweep from core.Root assigns each vertex the neighbour it was
// discovered from as parent. Children of a vertex appear in the order their
// edges were accepted, so the result is deterministic.
//
// Complexity: O(n) time and memory.
func orient(n int, edges []core.Edge) *core.Tree {
	type half struct{ to, w int }
	adj := make([][]half, n)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], half{e.To, e.Weight})
		adj[e.To] = append(adj[e.To], half{e.From, e.Weight})
	}

	t := core.NewTree(n)
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	queue = append(queue, core.Root)
	seen[core.Root] = true
	var head int
	for head < len(queue) {
		u := queue[head]
		head++
		for _, h := range adj[u] {
			if seen[h.to] {
				continue
			}
			seen[h.to] = true
			if err := t.AddEdge(u, h.to, h.w); err != nil {
				panic(err)
			}
			queue = append(queue, h.to)
		}
	}

	return t
}
