package dfs

import (
	"fmt"

	"github.com/katalvlaran/hamtour/core"
)

// Preorder returns the preorder vertex sequence of t. A nil tree (no tree was
// built) yields nil. The root is always first.
func Preorder(t *core.Tree) []int {
	// No options, no hook, no context: Walk cannot fail.
	order, err := Walk(t)
	if err != nil {
		panic(err)
	}

	return order
}

// Walk traverses t in preorder with an explicit frame stack and returns the
// emitted sequence. On error the partial sequence emitted so far is returned.
//
// Steps:
//  1. Push a frame for core.Root.
//  2. Pop the top frame. If it is not emitted, emit it now (hook included).
//  3. If it has unscheduled children, advance its cursor, push it back, then push
//     a new frame for the child the cursor pointed at.
//  4. Otherwise drop it.
//  5. Repeat until the stack is empty.
func Walk(t *core.Tree, opts ...Option) ([]int, error) {
	if t == nil || t.Len() == 0 {
		return nil, nil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var (
		n     = t.Len()
		order = make([]int, 0, n)
		stack = make([]Frame, 0, 64)
		f     Frame
		kids  []int
	)

	// 1. Seed with the root.
	stack = append(stack, newFrame(t, core.Root))

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return order, o.Ctx.Err()
		default:
		}

		// 2. Pop.
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.Emitted {
			if len(order) == n {
				panic(fmt.Sprintf("dfs: vertex %d emitted after all %d vertices", f.Vertex, n))
			}
			order = append(order, f.Vertex)
			f.Emitted = true
			if o.OnVisit != nil {
				// The popped frame is not on the stack, so its depth equals len(stack).
				if err := o.OnVisit(f.Vertex, len(stack)); err != nil {
					return order, fmt.Errorf("dfs: OnVisit hook for %d: %w", f.Vertex, err)
				}
			}
		}

		// 4. Exhausted: discard without requeueing.
		if f.done() {
			continue
		}

		// 3. Schedule the next child above the partially consumed parent.
		kids = t.Children(f.Vertex)
		if len(kids) != f.Len {
			panic(fmt.Sprintf("dfs: vertex %d has %d children, frame recorded %d", f.Vertex, len(kids), f.Len))
		}
		child := kids[f.Next]
		f.Next++
		stack = append(stack, f, newFrame(t, child))
	}

	return order, nil
}

// newFrame creates an unemitted frame for v with its current child count.
// core.Tree.Children panics for ids outside the arena.
func newFrame(t *core.Tree, v int) Frame {
	return Frame{Vertex: v, Next: 0, Len: len(t.Children(v)), Emitted: false}
}
