// Package prim_kruskal builds the minimum spanning tree of a fingerprint
// collection under the Hamming metric, rooted at vertex 0.
//
// What & Why
//
//   - The input is the complete graph over n fingerprinted items: every pair
//     (u, v) is an edge of weight hamming.Distance(u, v) ∈ [0, 64].
//   - A minimum spanning tree links each item to a perceptually close
//     neighbour while keeping the total weight minimal; its preorder walk (see
//     package dfs) is the starting tour that the tsp refiners polish.
//
// Algorithms Provided
//
//   - Kruskal(items) (*core.Tree, bool)
//
//   - Strategy: enumerate every unordered pair once, bucket the pairs by
//     weight (weights are bounded by 64, so a counting sort replaces the
//     comparison sort), then accept pairs in ascending order whenever their
//     endpoints lie in different sets of a UnionFind. Stop after n-1 edges.
//     The undirected edge set is finally oriented away from vertex 0.
//
//   - Complexity: O(n²) time, O(n²) memory for the pair buckets.
//
//   - Determinism: within one weight, pairs keep enumeration order
//     ((0,1), (0,2), …, (1,2), …), i.e. the lower pair index wins a tie.
//
//   - Prim(items, opts...) (*core.Tree, bool)
//
//   - Strategy: grow the tree from vertex 0. Each round is one scan over the
//     pending vertices: the distances from the most recently attached vertex
//     to every pending vertex are computed (in parallel for large frontiers),
//     then, after a barrier, a single goroutine folds them into the
//     per-vertex best key and attaches the globally closest pending vertex.
//     Keeping the best key per pending vertex makes the scan equivalent to
//     re-evaluating every (visited, pending) pair.
//
//   - Complexity: O(n²) time, O(n) memory.
//
//   - Determinism: ties pick the lowest pending vertex id, and a pending
//     vertex keeps the earliest-visited parent among equal-weight candidates.
//     The worker count never changes the result.
//
// When to Choose Which Algorithm
//
//   - Kruskal: simplest, fully sequential, predictable tie-breaking; memory
//     grows with the number of pairs.
//   - Prim: linear memory and a scan that spreads across cores; preferred for
//     large collections.
//
// Both produce a true minimum spanning tree, so their total weights are equal
// even when the chosen edges differ under ties.
//
// Result Contract
//
//   - Fewer than two items: (nil, false). Not an error; callers treat it as a no-op.
//   - Otherwise: (tree, true) with exactly n-1 edges, rooted at core.Root.
//     Builders run tree.MustValidate before returning; a malformed tree is a
//     programming fault and panics.
//
// Compute dispatches on MSTOptions.Method and returns ErrUnknownMethod for
// anything other than MethodKruskal or MethodPrim.
package prim_kruskal
