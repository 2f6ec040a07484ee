// Package dfs linearizes a rooted core.Tree into its preorder vertex sequence
// without native recursion.
//
// What:
//
//   - Preorder(t): the vertex sequence root first, then each child subtree in
//     the tree's fixed child order. Every vertex appears exactly once.
//   - Walk(t, opts...): the same traversal with a pre-order hook and
//     cancellation via context.Context.
//
// How:
//
//	The traversal keeps an explicit stack of Frames (vertex id, child cursor,
//	child count, emitted flag) in a heap-allocated slice, so depth is bounded
//	only by memory. Each iteration pops the top frame and
//
//	  1. emits its vertex if it has not been emitted yet (always, before looking
//	     at children, so leaves are never dropped);
//	  2. if a child remains, advances the cursor, pushes the frame back and
//	     pushes a fresh frame for that child on top of it;
//	  3. otherwise discards the frame.
//
//	A frame is therefore discarded only once its cursor reaches its child
//	count, and its vertex is emitted exactly once, at its first pop.
//
// Complexity:
//
//   - Time:   O(n) for n vertices.
//   - Memory: O(depth) frames plus the O(n) output.
//
// Errors:
//
//   - context.Canceled / DeadlineExceeded if the Walk context ends.
//   - any error returned by the OnVisit hook, wrapped.
//
// A frame that disagrees with the tree (child count changed, a vertex emitted
// twice) is a programming fault and panics.
package dfs
