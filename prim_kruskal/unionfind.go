package prim_kruskal

// UnionFind is a disjoint-set partition over the ids 0..n-1.
//
// Sets only ever merge. Find compresses paths by halving (every visited node
// is re-pointed to its grandparent) and Union attaches the smaller set under
// the larger one, giving amortized near-constant cost per operation.
//
// A UnionFind is not safe for concurrent use.
type UnionFind struct {
	parent []int
	size   []int
	sets   int
}

// NewUnionFind creates n singleton sets.
// Complexity: O(n).
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Find returns the representative of the set containing x.
// Iterative, so long parent chains cannot exhaust the goroutine stack.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		// Path halving: make x point to its grandparent.
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets containing x and y and reports whether they were
// distinct. Union by size keeps trees shallow.
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	uf.sets--

	return true
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Size returns the number of elements in the set containing x.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}

// Sets returns the current number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }
