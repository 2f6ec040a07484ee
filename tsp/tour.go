// Package tsp - tour utilities that depend only on tour structure.
package tsp

import "fmt"

// ValidatePermutation checks that tour is a permutation of {0..n-1}.
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if len(tour) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(tour), n)
	}
	seen := make([]bool, n)
	for i, v := range tour {
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return fmt.Errorf("%w: tour[%d]=%d out of range", ErrNotPermutation, i, v)
		}
		// Duplicate also violates the bijection.
		if seen[v] {
			return fmt.Errorf("%w: %d repeated", ErrNotPermutation, v)
		}
		seen[v] = true
	}

	return nil
}

// Identity returns the tour 0, 1, …, n-1.
func Identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// reverseInPlace reverses tour[i..k] inclusive. Callers guarantee 0 ≤ i < k < len(tour).
// Complexity: O(k−i).
func reverseInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
