package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/dfs"
)

// ExamplePreorder linearizes a small tree. Leaves 2, 3 and 4 are emitted like
// any other vertex.
//
//	    0
//	   / \
//	  1   4
//	 / \
//	2   3
func ExamplePreorder() {
	t := core.NewTree(5)
	_ = t.AddEdge(0, 1, 1)
	_ = t.AddEdge(0, 4, 1)
	_ = t.AddEdge(1, 2, 1)
	_ = t.AddEdge(1, 3, 1)

	fmt.Println(dfs.Preorder(t))
	// Output: [0 1 2 3 4]
}
