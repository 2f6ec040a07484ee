package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamtour/core"
)

// buildChain returns the path 0→1→…→n-1 with unit weights.
func buildChain(t *testing.T, n int) *core.Tree {
	t.Helper()
	tr := core.NewTree(n)
	for v := 1; v < n; v++ {
		require.NoError(t, tr.AddEdge(v-1, v, 1))
	}

	return tr
}

func TestAddEdge_Rejections(t *testing.T) {
	tr := core.NewTree(3)

	assert.ErrorIs(t, tr.AddEdge(0, 3, 1), core.ErrVertexNotFound)
	assert.ErrorIs(t, tr.AddEdge(-1, 1, 1), core.ErrVertexNotFound)
	assert.ErrorIs(t, tr.AddEdge(1, 1, 0), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, tr.AddEdge(1, core.Root, 1), core.ErrRootHasParent)

	require.NoError(t, tr.AddEdge(0, 1, 2))
	assert.ErrorIs(t, tr.AddEdge(2, 1, 2), core.ErrSecondParent)
	assert.Equal(t, 1, tr.EdgeCount())
}

func TestChildrenKeepInsertionOrder(t *testing.T) {
	tr := core.NewTree(4)
	require.NoError(t, tr.AddEdge(0, 3, 5))
	require.NoError(t, tr.AddEdge(0, 1, 1))
	require.NoError(t, tr.AddEdge(3, 2, 2))

	assert.Equal(t, []int{3, 1}, tr.Children(0))
	assert.Equal(t, []int{2}, tr.Children(3))
	assert.Empty(t, tr.Children(1))

	p, ok := tr.Parent(2)
	assert.True(t, ok)
	assert.Equal(t, 3, p)
	_, ok = tr.Parent(core.Root)
	assert.False(t, ok)

	assert.Equal(t, int64(8), tr.Weight())
	assert.Equal(t, []core.Edge{
		{From: 0, To: 3, Weight: 5},
		{From: 0, To: 1, Weight: 1},
		{From: 3, To: 2, Weight: 2},
	}, tr.Edges())
	assert.Equal(t, 2, tr.Depth())
	require.NoError(t, tr.Validate())
}

func TestChildren_PanicsOutsideArena(t *testing.T) {
	tr := core.NewTree(2)
	assert.Panics(t, func() { tr.Children(2) })
}

func TestValidate(t *testing.T) {
	t.Run("empty and single", func(t *testing.T) {
		assert.NoError(t, core.NewTree(0).Validate())
		assert.NoError(t, core.NewTree(1).Validate())
	})

	t.Run("missing edge", func(t *testing.T) {
		tr := core.NewTree(3)
		require.NoError(t, tr.AddEdge(0, 1, 1))
		assert.ErrorIs(t, tr.Validate(), core.ErrEdgeCount)
		assert.Panics(t, tr.MustValidate)
	})

	t.Run("detached cycle", func(t *testing.T) {
		// 1→2 and 2→1 give n-1 edges and one parent each, yet neither is reachable.
		tr := core.NewTree(3)
		require.NoError(t, tr.AddEdge(1, 2, 1))
		require.NoError(t, tr.AddEdge(2, 1, 1))
		assert.ErrorIs(t, tr.Validate(), core.ErrUnreachable)
	})

	t.Run("deep chain", func(t *testing.T) {
		const n = 200_000
		tr := buildChain(t, n)
		assert.NoError(t, tr.Validate())
		assert.Equal(t, n-1, tr.Depth())
		assert.Equal(t, int64(n-1), tr.Weight())
	})
}
