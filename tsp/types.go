package tsp

import (
	"context"
	"errors"
	"time"
)

// ErrNotPermutation indicates a tour that is not a permutation of 0..n-1.
var ErrNotPermutation = errors.New("tsp: tour is not a permutation of the item ids")

// ErrUnsupportedAlgorithm indicates an Options.Algo outside the known set.
var ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

// Algo selects the local-search neighbourhood.
type Algo int

const (
	// RandomSwap exchanges two uniformly random positions per attempt.
	RandomSwap Algo = iota

	// TwoOptOnly reverses path segments in a deterministic scan.
	TwoOptOnly
)

// String returns the configuration name of the algorithm.
func (a Algo) String() string {
	switch a {
	case RandomSwap:
		return "swap"
	case TwoOptOnly:
		return "2opt"
	default:
		return "unknown"
	}
}

// ParseAlgo maps a configuration name ("swap", "2opt") to an Algo.
func ParseAlgo(s string) (Algo, error) {
	switch s {
	case "swap", "":
		return RandomSwap, nil
	case "2opt", "two-opt":
		return TwoOptOnly, nil
	default:
		return RandomSwap, ErrUnsupportedAlgorithm
	}
}

// Defaults mirror a ten second, thirty million attempt polish.
const (
	DefaultMaxIters  = 30_000_000
	DefaultTimeLimit = 10 * time.Second
)

// Options configures a refinement run.
type Options struct {
	// Algo selects the neighbourhood (RandomSwap by default).
	Algo Algo

	// MaxIters bounds attempted moves. ≤ 0 ⇒ no-op.
	MaxIters int

	// TimeLimit bounds wall-clock time. ≤ 0 ⇒ no-op.
	TimeLimit time.Duration

	// Seed for RandomSwap; 0 ⇒ defaultRNGSeed.
	Seed int64

	// Ctx stops the run early when done; nil never stops it.
	Ctx context.Context

	// now is the clock; nil ⇒ time.Now. Tests replace it.
	now func() time.Time
}

// DefaultOptions returns RandomSwap with DefaultMaxIters and DefaultTimeLimit.
func DefaultOptions() Options {
	return Options{
		Algo:      RandomSwap,
		MaxIters:  DefaultMaxIters,
		TimeLimit: DefaultTimeLimit,
		Seed:      0,
	}
}

// StopReason tells why a refinement run ended.
type StopReason int

const (
	// StopTrivial: the tour had fewer than two vertices or a budget was zero.
	StopTrivial StopReason = iota

	// StopIterations: MaxIters attempts were made.
	StopIterations

	// StopTimeLimit: the wall-clock budget ran out.
	StopTimeLimit

	// StopLocalOptimum: a full 2-opt pass found no improving move.
	StopLocalOptimum

	// StopCancelled: Options.Ctx was done.
	StopCancelled
)

// String names the stop reason for logs.
func (s StopReason) String() string {
	switch s {
	case StopTrivial:
		return "trivial"
	case StopIterations:
		return "iterations"
	case StopTimeLimit:
		return "time-limit"
	case StopLocalOptimum:
		return "local-optimum"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result reports a refinement run. The tour itself is refined in place.
type Result struct {
	// InitialCost and Cost are the path costs before and after; Cost ≤ InitialCost.
	InitialCost int64
	Cost        int64

	// Iterations counts attempted moves, Accepted the applied ones.
	Iterations int
	Accepted   int

	// Elapsed is the wall-clock time spent searching.
	Elapsed time.Duration

	// Stopped records which condition ended the run.
	Stopped StopReason
}
