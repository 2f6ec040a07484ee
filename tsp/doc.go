// Package tsp refines a linear tour of fingerprinted items with budget-bounded
// local search.
//
// The tour is an open path (no closing edge) over all vertex ids; its cost is
// hamming.PathCost. The refiners never make it worse: every applied move has a
// strictly negative exact cost delta.
//
// Algorithms:
//
//   - RandomSwap (default): pick two positions uniformly at random; if distinct,
//     swap them and keep the swap only when the path gets strictly cheaper.
//     The delta touches at most four edges, so each attempt is O(1).
//   - TwoOptOnly: deterministic first-improvement segment reversal on the open
//     path, repeated until a full pass finds nothing or a budget runs out.
//
// Budgets (Options):
//
//   - MaxIters bounds attempted moves; TimeLimit bounds wall-clock time. The
//     search stops as soon as either is exhausted. A zero or negative budget
//     of either kind means no work: the tour is returned unchanged.
//   - The clock is checked once per attempted move, so a run overshoots its
//     TimeLimit by at most one move's worth of work. There is no preemption.
//
// Determinism: Seed selects the random stream (seed==0 ⇒ fixed default seed).
// Same seed, same tour, same budget ⇒ same result, as long as the time budget
// does not bind.
//
// Degenerate inputs (tours of length 0 or 1) are no-ops, never errors. A tour
// that is not a permutation of the item ids is a programming fault and panics.
package tsp
