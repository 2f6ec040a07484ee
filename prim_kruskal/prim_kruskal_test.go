package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamtour/builder"      // synthetic fingerprint sets
	"github.com/katalvlaran/hamtour/core"         // core.Tree and its invariants
	"github.com/katalvlaran/hamtour/hamming"      // fingerprints and the metric
	"github.com/katalvlaran/hamtour/prim_kruskal" // package under test
)

// scenarioItems are the four fingerprints a=0x00, b=0x01, c=0x03, d=0xFF.
// Pairwise: a–b=1, a–c=2, a–d=8, b–c=1, b–d=7, c–d=6. MST: a→b→c→d, weight 8.
func scenarioItems() []hamming.Item {
	return hamming.Items(0x00, 0x01, 0x03, 0xFF)
}

// randomItems returns n items drawn from four clusters so that both ties and
// large distances occur. Seeded for reproducibility.
func randomItems(n int, seed int64) []hamming.Item {
	return builder.MustClustered(n, 4, builder.WithSeed(seed))
}

// bruteMSTWeight is a textbook O(n³) Prim that rescans every (visited, unvisited)
// pair each round. It is the reference the optimized builders must match.
func bruteMSTWeight(items []hamming.Item) int64 {
	n := len(items)
	visited := make([]bool, n)
	visited[0] = true
	var total int64
	for added := 1; added < n; added++ {
		best, bestW := -1, hamming.MaxDistance+1
		for u := 0; u < n; u++ {
			if !visited[u] {
				continue
			}
			for v := 0; v < n; v++ {
				if visited[v] {
					continue
				}
				if w := hamming.Between(items, u, v); w < bestW {
					best, bestW = v, w
				}
			}
		}
		visited[best] = true
		total += int64(bestW)
	}

	return total
}

// requireWellFormed asserts n-1 edges, single component, no cycles and that each
// recorded edge weight is the real distance.
func requireWellFormed(t *testing.T, items []hamming.Item, tr *core.Tree) {
	t.Helper()
	require.NotNil(t, tr)
	require.NoError(t, tr.Validate())
	assert.Equal(t, len(items), tr.Len())
	assert.Equal(t, len(items)-1, tr.EdgeCount())
	for _, e := range tr.Edges() {
		assert.Equal(t, hamming.Between(items, e.From, e.To), e.Weight, "edge %d→%d", e.From, e.To)
	}
}

func TestBuilders_FewerThanTwoItems(t *testing.T) {
	for _, items := range [][]hamming.Item{nil, {}, hamming.Items(42)} {
		tr, ok := prim_kruskal.Kruskal(items)
		assert.False(t, ok)
		assert.Nil(t, tr)

		tr, ok = prim_kruskal.Prim(items)
		assert.False(t, ok)
		assert.Nil(t, tr)

		tr, ok, err := prim_kruskal.Compute(items, prim_kruskal.DefaultOptions())
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, tr)
	}
}

func TestBuilders_Scenario(t *testing.T) {
	items := scenarioItems()
	builders := map[string]func([]hamming.Item) (*core.Tree, bool){
		"kruskal": prim_kruskal.Kruskal,
		"prim":    func(it []hamming.Item) (*core.Tree, bool) { return prim_kruskal.Prim(it) },
	}
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			tr, ok := build(items)
			require.True(t, ok)
			requireWellFormed(t, items, tr)
			assert.Equal(t, int64(8), tr.Weight())
			// Chain a→b→c→d rooted at a.
			assert.Equal(t, []int{1}, tr.Children(0))
			assert.Equal(t, []int{2}, tr.Children(1))
			assert.Equal(t, []int{3}, tr.Children(2))
			assert.Empty(t, tr.Children(3))
		})
	}
}

func TestBuilders_TwoItems(t *testing.T) {
	items := hamming.Items(0xF0, 0x0F)
	for _, tr := range []*core.Tree{mustKruskal(t, items), mustPrim(t, items)} {
		requireWellFormed(t, items, tr)
		assert.Equal(t, []int{1}, tr.Children(core.Root))
		assert.Equal(t, int64(8), tr.Weight())
	}
}

func TestBuilders_IdenticalFingerprints(t *testing.T) {
	items := hamming.Items(7, 7, 7, 7, 7)
	for _, tr := range []*core.Tree{mustKruskal(t, items), mustPrim(t, items)} {
		requireWellFormed(t, items, tr)
		assert.Zero(t, tr.Weight())
	}
}

// TestBuilders_RandomProperties checks the testable properties on many random inputs:
// well-formedness, equal weight across algorithms, optimality against the brute-force
// reference and the naive chain bound.
func TestBuilders_RandomProperties(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		n := 2 + int(seed)%37
		items := randomItems(n, seed)

		k := mustKruskal(t, items)
		p := mustPrim(t, items)
		requireWellFormed(t, items, k)
		requireWellFormed(t, items, p)

		want := bruteMSTWeight(items)
		assert.Equal(t, want, k.Weight(), "kruskal seed=%d", seed)
		assert.Equal(t, want, p.Weight(), "prim seed=%d", seed)
		assert.LessOrEqual(t, k.Weight(), hamming.ChainCost(items))
	}
}

// TestPrim_ParallelScanMatchesSequential forces tiny grains so every scan fans out,
// and checks the tree is edge-for-edge identical to the sequential one.
func TestPrim_ParallelScanMatchesSequential(t *testing.T) {
	items := randomItems(600, 99)

	seq := mustPrim(t, items, prim_kruskal.WithWorkers(1))
	par := mustPrim(t, items, prim_kruskal.WithWorkers(8), prim_kruskal.WithGrain(7))

	requireWellFormed(t, items, par)
	assert.Equal(t, seq.Edges(), par.Edges())
	assert.Equal(t, seq.Weight(), mustKruskal(t, items).Weight())
}

func TestCompute_Dispatch(t *testing.T) {
	items := randomItems(50, 3)

	opts := prim_kruskal.DefaultOptions()
	assert.Equal(t, prim_kruskal.MethodKruskal, opts.Method)

	tk, ok, err := prim_kruskal.Compute(items, opts)
	require.NoError(t, err)
	require.True(t, ok)

	opts.Method = prim_kruskal.MethodPrim
	tp, ok, err := prim_kruskal.Compute(items, opts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tk.Weight(), tp.Weight())

	opts.Method = "boruvka"
	_, _, err = prim_kruskal.Compute(items, opts)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	opts.Method = prim_kruskal.MethodPrim
	opts.Workers = 0
	_, _, err = prim_kruskal.Compute(items, opts)
	assert.ErrorIs(t, err, prim_kruskal.ErrBadWorkers)
}

func TestOptions_IgnoreNonPositive(t *testing.T) {
	o := prim_kruskal.DefaultOptions()
	prim_kruskal.WithWorkers(0)(&o)
	prim_kruskal.WithGrain(-3)(&o)
	prim_kruskal.WithMethod(prim_kruskal.MethodPrim)(&o)
	assert.Equal(t, prim_kruskal.DefaultGrain, o.Grain)
	assert.Positive(t, o.Workers)
	assert.Equal(t, prim_kruskal.MethodPrim, o.Method)
}

func mustKruskal(t *testing.T, items []hamming.Item) *core.Tree {
	t.Helper()
	tr, ok := prim_kruskal.Kruskal(items)
	require.True(t, ok)

	return tr
}

func mustPrim(t *testing.T, items []hamming.Item, opts ...prim_kruskal.Option) *core.Tree {
	t.Helper()
	tr, ok := prim_kruskal.Prim(items, opts...)
	require.True(t, ok)

	return tr
}

// TestBuilders_Chain: on nested-bit codes the only MST is the path 0→1→…→64.
func TestBuilders_Chain(t *testing.T) {
	items, err := builder.Chain(65)
	require.NoError(t, err)

	for name, build := range map[string]func([]hamming.Item) (*core.Tree, bool){
		"kruskal": prim_kruskal.Kruskal,
		"prim":    func(it []hamming.Item) (*core.Tree, bool) { return prim_kruskal.Prim(it) },
	} {
		tr, ok := build(items)
		require.True(t, ok, name)
		assert.Equal(t, int64(64), tr.Weight(), name)
		assert.Equal(t, 64, tr.Depth(), name)
		for v := 1; v < 65; v++ {
			p, _ := tr.Parent(v)
			assert.Equal(t, v-1, p, name)
		}
	}
}
