package tsp

import "time"

// WithClock exposes the clock hook to the external test package.
func WithClock(o Options, now func() time.Time) Options {
	o.now = now
	return o
}

// Touched exposes the edge selection used by Swap.
func Touched(n, i, j int) []int {
	var buf [4]int
	return append([]int(nil), touched(n, i, j, &buf)...)
}
