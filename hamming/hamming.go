package hamming

import (
	"errors"
	"math/bits"
)

// MaxDistance is the largest possible distance between two 64-bit codes.
const MaxDistance = 64

// ErrIndexOutOfRange indicates a path referencing a vertex id outside the item slice.
var ErrIndexOutOfRange = errors.New("hamming: vertex index out of range")

// Item is one fingerprinted input element.
//
// Index is the ordinal position of the element in the original input collection
// and doubles as its vertex id in every graph built over the collection.
// Fingerprint is the opaque 64-bit perceptual code; only consistency between
// compared codes matters, never their bit layout.
type Item struct {
	Index       int
	Fingerprint uint64
}

// Distance returns the number of differing bits between a and b.
// Complexity: O(1).
func Distance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// Between returns the distance between the fingerprints of items u and v.
// It panics if u or v is out of range, like any slice access.
func Between(items []Item, u, v int) int {
	return Distance(items[u].Fingerprint, items[v].Fingerprint)
}

// Items wraps raw fingerprints into Items, assigning Index in input order.
func Items(codes ...uint64) []Item {
	out := make([]Item, len(codes))
	for i, c := range codes {
		out[i] = Item{Index: i, Fingerprint: c}
	}

	return out
}

// Codes extracts the fingerprints of items, preserving order.
func Codes(items []Item) []uint64 {
	out := make([]uint64, len(items))
	for i := range items {
		out[i] = items[i].Fingerprint
	}

	return out
}

// PathCost returns the total weight of the open path visiting tour in order:
// the sum of Distance between every pair of consecutive vertices.
//
// Paths of length 0 or 1 cost 0. Any vertex outside [0, len(items)) yields
// ErrIndexOutOfRange.
//
// Complexity: O(len(tour)).
func PathCost(items []Item, tour []int) (int64, error) {
	var (
		sum int64
		i   int
		n   = len(items)
	)
	for i = 0; i < len(tour); i++ {
		if tour[i] < 0 || tour[i] >= n {
			return 0, ErrIndexOutOfRange
		}
		if i > 0 {
			sum += int64(Between(items, tour[i-1], tour[i]))
		}
	}

	return sum, nil
}

// ChainCost is the cost of visiting items in input order. It is the weight of
// the naive chain 0→1→…→n-1 and an upper bound for any minimum spanning tree.
func ChainCost(items []Item) int64 {
	var sum int64
	for i := 1; i < len(items); i++ {
		sum += int64(Between(items, i-1, i))
	}

	return sum
}
