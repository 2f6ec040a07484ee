// Package dfs defines the traversal frame and the options of Walk.
package dfs

import (
	"context"
)

// Frame is one entry of the explicit traversal stack.
//
// Vertex is the tree vertex id, Next the index of the next child to schedule,
// Len the vertex's child count captured when the frame was created, and
// Emitted whether Vertex has already been written to the output.
type Frame struct {
	Vertex  int
	Next    int
	Len     int
	Emitted bool
}

// done reports whether every child of the frame has been scheduled.
func (f Frame) done() bool { return f.Next >= f.Len }

// Option configures optional behavior of Walk.
type Option func(*WalkOptions)

// WalkOptions holds configurable parameters for Walk.
type WalkOptions struct {
	// Ctx allows cancellation; checked once per popped frame.
	// Defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is emitted (pre-order),
	// with its depth below the root. Returning an error aborts the walk.
	OnVisit func(vertex, depth int) error
}

// DefaultOptions returns WalkOptions with a background context and no hook.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for Walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(vertex, depth int) error) Option {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}
