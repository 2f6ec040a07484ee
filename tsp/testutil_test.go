// Package tsp_test provides lightweight helpers shared across *_test.go files.
package tsp_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamtour/builder"
	"github.com/katalvlaran/hamtour/hamming"
	"github.com/katalvlaran/hamtour/tsp"
)

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(0)

	// generous is a time budget that never binds in unit tests.
	generous = time.Hour
)

// scenarioItems are a=0x00, b=0x01, c=0x03, d=0xFF; the path a,b,c,d costs 8.
func scenarioItems() []hamming.Item {
	return hamming.Items(0x00, 0x01, 0x03, 0xFF)
}

// randomItems draws n fingerprints around three centres, seeded.
func randomItems(n int, seed int64) []hamming.Item {
	return builder.MustClustered(n, 3, builder.WithSeed(seed), builder.WithNoise(8))
}

// shuffled returns a seeded random permutation of 0..n-1.
func shuffled(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	return r.Perm(n)
}

// opts builds Options for algo with the given iteration cap and a generous clock.
func opts(algo tsp.Algo, iters int, seed int64) tsp.Options {
	o := tsp.DefaultOptions()
	o.Algo = algo
	o.MaxIters = iters
	o.TimeLimit = generous
	o.Seed = seed

	return o
}

// fakeClock returns a clock advancing by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

// requireCostMatches checks the reported cost against a fresh recomputation.
func requireCostMatches(t *testing.T, items []hamming.Item, tour []int, res tsp.Result) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, len(items)))
	got, err := hamming.PathCost(items, tour)
	require.NoError(t, err)
	require.Equal(t, got, res.Cost)
	require.LessOrEqual(t, res.Cost, res.InitialCost)
}
