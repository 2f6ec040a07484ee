package hamming_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamtour/hamming"
)

// TestDistance_Table checks hand-computed popcounts, including the extremes.
func TestDistance_Table(t *testing.T) {
	cases := []struct {
		name string
		a, b uint64
		want int
	}{
		{"equal", 0xDEADBEEF, 0xDEADBEEF, 0},
		{"one bit", 0x00, 0x01, 1},
		{"two bits", 0x00, 0x03, 2},
		{"low byte", 0x00, 0xFF, 8},
		{"b-d", 0x01, 0xFF, 7},
		{"c-d", 0x03, 0xFF, 6},
		{"all bits", 0, ^uint64(0), hamming.MaxDistance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hamming.Distance(tc.a, tc.b))
		})
	}
}

// TestDistance_MetricAxioms samples random codes and checks symmetry,
// identity of indiscernibles and the triangle inequality.
func TestDistance_MetricAxioms(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		a, b, c := r.Uint64(), r.Uint64(), r.Uint64()
		if i%10 == 0 {
			b = a // force the zero case regularly
		}

		dab := hamming.Distance(a, b)
		assert.Equal(t, dab, hamming.Distance(b, a), "symmetry")
		assert.Equal(t, a == b, dab == 0, "zero iff equal")
		assert.LessOrEqual(t, hamming.Distance(a, c), dab+hamming.Distance(b, c), "triangle")
	}
}

func TestPathCost(t *testing.T) {
	items := hamming.Items(0x00, 0x01, 0x03, 0xFF)

	cost, err := hamming.PathCost(items, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(8), cost)

	cost, err = hamming.PathCost(items, []int{3, 0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(8+2+1), cost)

	// Degenerate paths have no edges.
	cost, err = hamming.PathCost(items, nil)
	require.NoError(t, err)
	assert.Zero(t, cost)
	cost, err = hamming.PathCost(items, []int{2})
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = hamming.PathCost(items, []int{0, 4})
	assert.ErrorIs(t, err, hamming.ErrIndexOutOfRange)
	_, err = hamming.PathCost(items, []int{-1})
	assert.ErrorIs(t, err, hamming.ErrIndexOutOfRange)
}

func TestItemsAndCodes(t *testing.T) {
	items := hamming.Items(5, 6, 7)
	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, i, it.Index)
	}
	assert.Equal(t, []uint64{5, 6, 7}, hamming.Codes(items))
	assert.Equal(t, int64(hamming.Distance(5, 6)+hamming.Distance(6, 7)), hamming.ChainCost(items))
	assert.Zero(t, hamming.ChainCost(nil))
}
