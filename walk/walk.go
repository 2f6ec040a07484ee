package walk

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// queueItem pairs a directory with its depth below the root it came from.
type queueItem struct {
	dir   string
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	opts  WalkOptions
	ctx   context.Context
	queue []queueItem
	files []string
}

// Walk returns the accepted files below roots in breadth-first order.
// Roots that are missing or not directories are ignored. Returns
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or the
// OnVisit error wrapped with the offending path.
func Walk(ctx context.Context, roots []string, opts ...Option) ([]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	w := &walker{
		opts:  o,
		ctx:   ctx,
		queue: make([]queueItem, 0, len(roots)),
	}
	for _, root := range roots {
		if fi, err := os.Stat(root); err == nil && fi.IsDir() {
			w.queue = append(w.queue, queueItem{dir: root})
		}
	}

	if err := w.loop(); err != nil {
		return w.files, err
	}

	return w.files, nil
}

// loop drains the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue[0] = queueItem{}
		w.queue = w.queue[1:]
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand reads one directory, yields its files and enqueues its subdirectories.
func (w *walker) expand(item queueItem) error {
	entries, err := os.ReadDir(item.dir)
	if err != nil {
		return nil // unreadable: skip
	}
	for _, e := range entries {
		path := filepath.Join(item.dir, e.Name())
		switch {
		case e.IsDir():
			if w.opts.MaxDepth > 0 && item.depth+1 > w.opts.MaxDepth {
				continue
			}
			w.queue = append(w.queue, queueItem{dir: path, depth: item.depth + 1})
		case e.Type().IsRegular():
			if err = w.visit(path, item.depth); err != nil {
				return err
			}
		case e.Type()&fs.ModeSymlink != 0:
			// Linked files count; linked directories are never entered.
			if fi, serr := os.Stat(path); serr != nil || !fi.Mode().IsRegular() {
				continue
			}
			if err = w.visit(path, item.depth); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit applies the extension set and filter, then records the file.
func (w *walker) visit(path string, depth int) error {
	if !w.opts.HasExtension(path) || !w.opts.Filter(path) {
		return nil
	}
	if err := w.opts.OnVisit(path, depth); err != nil {
		return fmt.Errorf("walk: OnVisit error at %q: %w", path, err)
	}
	w.files = append(w.files, path)

	return nil
}
