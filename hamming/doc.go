// Package hamming holds the shared data model of hamtour: fingerprinted items
// and the distance metric every other package measures them with.
//
// What:
//
//   - Item pairs a stable vertex id (the ordinal position in the input
//     collection) with a 64-bit perceptual fingerprint.
//   - Distance is the Hamming distance between two fingerprints, i.e. the
//     population count of their XOR. It is a true metric on uint64:
//     symmetric, zero iff the codes are equal, and it satisfies the
//     triangle inequality.
//   - PathCost sums Distance over consecutive elements of an open path
//     (no closing edge back to the first element).
//
// Complexity:
//
//   - Distance: O(1) (single POPCNT on amd64/arm64).
//   - PathCost: O(n) for a path of n vertices.
//
// The package performs no I/O and never logs.
package hamming
