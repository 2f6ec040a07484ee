// Package builder generates synthetic fingerprint sets for tests, benchmarks
// and examples.
//
// Constructors:
//
//   - Random(n):        n independent uniform 64-bit codes.
//   - Clustered(n, k):  k random centres; every item copies a centre and flips
//     up to Noise random bits (WithNoise, default 6).
//   - Chain(n):         code i has its low i bits set, n ≤ 65. The identity order
//     is an optimal path of cost n-1 and the spanning tree is the path itself.
//
// Determinism is explicit: stochastic constructors require WithSeed or WithRand
// and consume the source in a fixed order, so a seed pins the output.
package builder
