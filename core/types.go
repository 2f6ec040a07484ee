package core

import "errors"

// Root is the vertex id every Tree is rooted at.
const Root = 0

// noParent marks the root and vertices not yet attached.
const noParent = -1

// Sentinel errors for tree construction and validation.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside the arena.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrRootHasParent indicates an edge into the root vertex.
	ErrRootHasParent = errors.New("core: root cannot have a parent")

	// ErrSecondParent indicates a vertex would receive a second incoming edge.
	ErrSecondParent = errors.New("core: vertex already has a parent")

	// ErrEdgeCount indicates a tree whose edge count is not n-1.
	ErrEdgeCount = errors.New("core: tree must have exactly n-1 edges")

	// ErrUnreachable indicates a vertex that cannot be reached from the root.
	ErrUnreachable = errors.New("core: vertex unreachable from root")
)

// Edge is a directed tree edge From→To (parent→child) with its weight.
type Edge struct {
	From   int
	To     int
	Weight int
}

// Tree is a rooted, directed spanning tree over vertex ids 0..n-1.
//
// children[v] keeps insertion order, which fixes the preorder produced by the
// linearizer. parent[v] is noParent for the root and for detached vertices.
type Tree struct {
	children [][]int
	parent   []int
	weight   []int // weight[v] = weight of the edge parent[v]→v
	edges    int
}

// NewTree allocates an edgeless tree arena for n vertices.
// Complexity: O(n).
func NewTree(n int) *Tree {
	if n < 0 {
		n = 0
	}
	t := &Tree{
		children: make([][]int, n),
		parent:   make([]int, n),
		weight:   make([]int, n),
	}
	for i := range t.parent {
		t.parent[i] = noParent
	}

	return t
}
