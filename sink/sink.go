// Package sink materialises an ordering of files as numbered links in an
// output directory: position k becomes "<k><ext>" pointing at the k-th file.
package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Sentinel errors for Materialize.
var (
	// ErrExists is returned when a destination name is taken and overwrite is off.
	ErrExists = errors.New("sink: destination already exists")

	// ErrBadOrder is returned when order does not index into paths.
	ErrBadOrder = errors.New("sink: order does not match paths")

	// ErrUnknownMode is returned by ParseMode for unsupported names.
	ErrUnknownMode = errors.New("sink: unknown link mode")
)

// Mode selects how destinations refer to their sources.
type Mode int

const (
	// Symlink creates symbolic links to the absolute source path.
	Symlink Mode = iota
	// Hardlink creates hard links; source and output must share a filesystem.
	Hardlink
)

// String returns the flag spelling of m.
func (m Mode) String() string {
	if m == Hardlink {
		return "hardlink"
	}

	return "symlink"
}

// ParseMode maps "symlink" (or "") and "hardlink" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "symlink":
		return Symlink, nil
	case "hardlink":
		return Hardlink, nil
	default:
		return Symlink, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Option configures Materialize.
type Option func(*Options)

// Options holds the link mode and overwrite policy.
type Options struct {
	Mode      Mode
	Overwrite bool
}

// WithMode selects symlinks or hard links.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithOverwrite replaces existing destinations instead of failing.
func WithOverwrite(on bool) Option {
	return func(o *Options) { o.Overwrite = on }
}

// Name returns the destination file name for position k of src.
func Name(k int, src string) string {
	return strconv.Itoa(k) + filepath.Ext(src)
}

// Materialize creates outDir if needed and links outDir/Name(k, paths[order[k]])
// to the absolute source path for every position k. It stops at the first
// failure or cancellation of ctx and returns how many links were created before it.
func Materialize(ctx context.Context, order []int, paths []string, outDir string, opts ...Option) (int, error) {
	o := Options{Mode: Symlink}
	for _, opt := range opts {
		opt(&o)
	}
	if len(order) != len(paths) {
		return 0, fmt.Errorf("%w: %d positions for %d paths", ErrBadOrder, len(order), len(paths))
	}
	for k, idx := range order {
		if idx < 0 || idx >= len(paths) {
			return 0, fmt.Errorf("%w: order[%d]=%d out of range", ErrBadOrder, k, idx)
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("sink: create %s: %w", outDir, err)
	}

	created := 0
	for k, idx := range order {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		src, err := filepath.Abs(paths[idx])
		if err != nil {
			return created, fmt.Errorf("sink: resolve %s: %w", paths[idx], err)
		}
		dst := filepath.Join(outDir, Name(k, src))
		if err = link(src, dst, o); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

// link places one destination, clearing an existing entry first when allowed.
func link(src, dst string, o Options) error {
	if _, err := os.Lstat(dst); err == nil {
		if !o.Overwrite {
			return fmt.Errorf("%w: %s", ErrExists, dst)
		}
		if err = os.Remove(dst); err != nil {
			return fmt.Errorf("sink: replace %s: %w", dst, err)
		}
	}

	var err error
	if o.Mode == Hardlink {
		err = os.Link(src, dst)
	} else {
		err = os.Symlink(src, dst)
	}
	if err != nil {
		return fmt.Errorf("sink: %s %s -> %s: %w", o.Mode, dst, src, err)
	}

	return nil
}
