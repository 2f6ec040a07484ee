// Package core defines the rooted spanning tree shared by the builders
// (prim_kruskal), the linearizer (dfs) and the orchestration layer.
//
// A Tree is an arena over vertex ids 0..n-1. Every vertex owns an ordered slice
// of child ids and edges are strictly directed parent→child, so a traversal
// never needs a visited set. Vertex 0 is always the root.
//
// Invariants of a well-formed Tree (checked by Validate):
//
//   - exactly n-1 edges for n ≥ 1 vertices;
//   - the root has no parent, every other vertex has exactly one;
//   - every vertex is reachable from the root, hence there are no cycles.
//
// AddEdge rejects edges that could never appear in a tree (self-loops, a second
// parent, an edge into the root, unknown vertices); reachability can only be
// judged once construction is complete, so it lives in Validate.
//
// Ownership: a Tree is built by exactly one goroutine and then handed, read-only,
// to the next stage. It carries no locks.
//
// Errors:
//
//	ErrVertexNotFound  - an edge endpoint is outside [0, n).
//	ErrLoopNotAllowed  - parent == child.
//	ErrRootHasParent   - an edge points into the root.
//	ErrSecondParent    - the child already has a parent.
//	ErrEdgeCount       - the edge count is not n-1.
//	ErrUnreachable     - some vertex cannot be reached from the root.
package core
