package core

import "fmt"

// Len returns the number of vertices in the arena.
func (t *Tree) Len() int { return len(t.children) }

// EdgeCount returns the number of directed edges added so far.
func (t *Tree) EdgeCount() int { return t.edges }

// has reports whether v is a vertex of the arena.
func (t *Tree) has(v int) bool { return v >= 0 && v < len(t.children) }

// AddEdge appends child to parent's child list with weight w.
//
// Error Conditions:
//   - ErrVertexNotFound : parent or child outside [0, n).
//   - ErrLoopNotAllowed : parent == child.
//   - ErrRootHasParent  : child == Root.
//   - ErrSecondParent   : child already attached.
//
// Complexity: O(1) amortized.
func (t *Tree) AddEdge(parent, child, w int) error {
	if !t.has(parent) || !t.has(child) {
		return fmt.Errorf("%w: %d→%d (n=%d)", ErrVertexNotFound, parent, child, t.Len())
	}
	if parent == child {
		return ErrLoopNotAllowed
	}
	if child == Root {
		return ErrRootHasParent
	}
	if t.parent[child] != noParent {
		return fmt.Errorf("%w: %d (parent %d)", ErrSecondParent, child, t.parent[child])
	}

	t.children[parent] = append(t.children[parent], child)
	t.parent[child] = parent
	t.weight[child] = w
	t.edges++

	return nil
}

// Children returns the ordered child ids of v. The slice is owned by the tree
// and must not be modified. An id outside the arena is a programming fault and
// panics.
func (t *Tree) Children(v int) []int {
	if !t.has(v) {
		panic(fmt.Sprintf("core: Children(%d) on tree of %d vertices", v, t.Len()))
	}

	return t.children[v]
}

// Parent returns the parent of v and true, or (-1, false) for the root,
// detached vertices and ids outside the arena.
func (t *Tree) Parent(v int) (int, bool) {
	if !t.has(v) || t.parent[v] == noParent {
		return noParent, false
	}

	return t.parent[v], true
}

// Edges returns all edges grouped by parent in ascending parent order,
// children in insertion order.
// Complexity: O(n).
func (t *Tree) Edges() []Edge {
	out := make([]Edge, 0, t.edges)
	for u, kids := range t.children {
		for _, v := range kids {
			out = append(out, Edge{From: u, To: v, Weight: t.weight[v]})
		}
	}

	return out
}

// Weight returns the total weight of all edges.
// Complexity: O(n).
func (t *Tree) Weight() int64 {
	var sum int64
	for v := range t.parent {
		if t.parent[v] != noParent {
			sum += int64(t.weight[v])
		}
	}

	return sum
}

// Validate checks the tree invariants: n-1 edges and every vertex reachable
// from Root. AddEdge already guarantees at most one parent per vertex and none
// for the root, so reachability also rules out cycles.
//
// The walk uses an explicit slice-backed stack; no recursion.
//
// Complexity: O(n) time, O(n) space.
func (t *Tree) Validate() error {
	n := t.Len()
	if n == 0 {
		return nil
	}
	if t.edges != n-1 {
		return fmt.Errorf("%w: have %d, want %d", ErrEdgeCount, t.edges, n-1)
	}

	seen := make([]bool, n)
	stack := []int{Root}
	seen[Root] = true
	reached := 1
	var u int
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range t.children[u] {
			if seen[v] {
				// Unreachable with a correct AddEdge; treat as a broken arena.
				return fmt.Errorf("%w: %d revisited", ErrUnreachable, v)
			}
			seen[v] = true
			reached++
			stack = append(stack, v)
		}
	}
	if reached != n {
		for v := range seen {
			if !seen[v] {
				return fmt.Errorf("%w: %d", ErrUnreachable, v)
			}
		}
	}

	return nil
}

// MustValidate panics when Validate fails. Builders call it before handing a
// tree to the next stage: a malformed tree is a programming fault.
func (t *Tree) MustValidate() {
	if err := t.Validate(); err != nil {
		panic(err)
	}
}

// Depth returns the number of edges on the longest root-to-leaf path.
// Computed breadth-first by level, so it is safe for arbitrarily deep trees.
// Complexity: O(n).
func (t *Tree) Depth() int {
	if t.Len() == 0 {
		return 0
	}
	depth := 0
	level := []int{Root}
	var next []int
	for {
		next = next[:0]
		for _, u := range level {
			next = append(next, t.children[u]...)
		}
		if len(next) == 0 {
			return depth
		}
		depth++
		level, next = next, level
	}
}
