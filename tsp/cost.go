// Package tsp - cost helpers shared by the refiners.
//
// The refiners work on the raw fingerprints (codes[v]) rather than hamming.Item
// to keep the hot loops free of struct indirection. Costs are exact integers,
// so acceptance never depends on a tolerance.
package tsp

import "github.com/katalvlaran/hamtour/hamming"

// edge returns the weight between tour positions p and p+1.
// Complexity: O(1).
func edge(codes []uint64, tour []int, p int) int {
	return hamming.Distance(codes[tour[p]], codes[tour[p+1]])
}

// pathCost sums all consecutive edges of tour.
// Complexity: O(n).
func pathCost(codes []uint64, tour []int) int64 {
	var sum int64
	for p := 0; p+1 < len(tour); p++ {
		sum += int64(edge(codes, tour, p))
	}

	return sum
}

// touched collects the distinct edge indices (edge p joins positions p and p+1)
// adjacent to positions i and j, i < j. At most four; adjacent positions share one.
func touched(n, i, j int, buf *[4]int) []int {
	out := buf[:0]
	for _, p := range [4]int{i - 1, i, j - 1, j} {
		if p < 0 || p > n-2 {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == p {
			continue // i == j-1: edge i is listed twice in a row
		}
		out = append(out, p)
	}

	return out
}

// sumEdges adds the weights of the listed edges.
func sumEdges(codes []uint64, tour []int, edges []int) int {
	s := 0
	for _, p := range edges {
		s += edge(codes, tour, p)
	}

	return s
}
