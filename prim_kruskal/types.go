// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/hamming"
)

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodKruskal or MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrBadWorkers indicates a non-positive worker count or grain.
var ErrBadWorkers = errors.New("prim_kruskal: workers and grain must be positive")

// MethodPrim selects Prim's algorithm (frontier growth from vertex 0).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (bucketed pairs and union-find).
const MethodKruskal = "kruskal"

// DefaultGrain is the number of pending vertices one Prim worker scans.
// Frontiers no larger than one grain are scanned on the calling goroutine.
const DefaultGrain = 4096

// MSTOptions configures which MST algorithm to run and how Prim parallelizes its scan.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method  string - one of MethodPrim or MethodKruskal.
//	Workers int    - upper bound on concurrent scan goroutines for Prim; ignored by Kruskal.
//	Grain   int    - pending vertices per scan task for Prim; ignored by Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Workers bounds the number of goroutines evaluating one Prim scan.
	Workers int

	// Grain is the chunk size of one Prim scan task.
	Grain int
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithWorkers returns an Option that bounds Prim's scan parallelism.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(opts *MSTOptions) {
		if n > 0 {
			opts.Workers = n
		}
	}
}

// WithGrain returns an Option that sets Prim's per-task chunk size.
// Values below 1 are ignored.
func WithGrain(n int) Option {
	return func(opts *MSTOptions) {
		if n > 0 {
			opts.Grain = n
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method  = MethodKruskal
//	– Workers = runtime.GOMAXPROCS(0)
//	– Grain   = DefaultGrain
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:  MethodKruskal,
		Workers: runtime.GOMAXPROCS(0),
		Grain:   DefaultGrain,
	}
}

// Validate reports ErrUnknownMethod or ErrBadWorkers for unusable options.
func (o MSTOptions) Validate() error {
	switch o.Method {
	case MethodKruskal, MethodPrim:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
	if o.Workers < 1 || o.Grain < 1 {
		return ErrBadWorkers
	}

	return nil
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(items).
//	– If opts.Method == MethodPrim:    calls Prim(items) with opts' Workers and Grain.
//	– Otherwise:                       returns ErrUnknownMethod.
//
// Returns:
//
//	*core.Tree - spanning tree rooted at core.Root (nil if fewer than two items).
//	bool       - false when there is no tree to build.
//	error      - non-nil only for invalid options.
//
// Note: this is optional scaffolding; Prim and Kruskal can still be called directly.
func Compute(items []hamming.Item, opts MSTOptions) (*core.Tree, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}

	// Dispatch by method name
	switch opts.Method {
	case MethodPrim:
		t, ok := Prim(items, WithWorkers(opts.Workers), WithGrain(opts.Grain))
		return t, ok, nil
	default:
		t, ok := Kruskal(items)
		return t, ok, nil
	}
}
