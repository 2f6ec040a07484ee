// Package walk discovers image files below a set of root directories.
//
// What
//
//   - Breadth-first traversal driven by an explicit FIFO queue; no recursion,
//     so directory depth is limited only by memory.
//   - Yields regular files (or links to them) accepted by the extension set (default: common raster
//     formats, case-insensitive) and an optional path filter.
//   - Hooks: OnVisit is called for each accepted file and may abort the walk.
//   - MaxDepth bounds how far below a root the walk descends.
//
// Determinism
//
//	os.ReadDir returns entries sorted by name, so for a fixed tree and fixed roots
//	the output order is reproducible: all files of depth d precede those of d+1.
//
// Unreadable directories are skipped silently. A symbolic link to a regular
// file is yielded under the link's own path; links to directories are never
// descended, which keeps the traversal acyclic without a visited set.
//
// Complexity:
//
//   - Time:   O(E) where E is the number of directory entries below the roots.
//   - Memory: O(W + F), W = widest level of directories, F = files returned.
package walk
