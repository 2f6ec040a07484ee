package walk

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("walk: invalid option supplied")

// DefaultExtensions are the raster formats the fingerprinting stage can decode.
var DefaultExtensions = []string{"bmp", "png", "jpg", "jpeg", "gif", "tga", "tiff", "ppm", "webp"}

// Option configures Walk via functional arguments.
type Option func(*WalkOptions)

// WalkOptions holds parameters and callbacks for a walk.
type WalkOptions struct {
	// Extensions is the accepted set, lower-case and without the leading dot.
	Extensions map[string]struct{}

	// Filter can reject an accepted file by returning false.
	Filter func(path string) bool

	// OnVisit is called for every yielded file with its depth below the root.
	// Returning an error aborts the walk.
	OnVisit func(path string, depth int) error

	// MaxDepth, if > 0, stops descending below this depth. Files directly in a
	// root are at depth 0.
	MaxDepth int

	err error
}

// DefaultOptions returns options accepting DefaultExtensions with no depth limit.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Extensions: extensionSet(DefaultExtensions),
		Filter:     func(string) bool { return true },
		OnVisit:    func(string, int) error { return nil },
	}
}

// WithExtensions replaces the accepted extension set. Leading dots and case are ignored.
// An empty list is a violation.
func WithExtensions(exts ...string) Option {
	return func(o *WalkOptions) {
		if len(exts) == 0 {
			o.err = fmt.Errorf("%w: empty extension list", ErrOptionViolation)
			return
		}
		o.Extensions = extensionSet(exts)
	}
}

// WithFilter skips files for which fn returns false.
func WithFilter(fn func(path string) bool) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithOnVisit registers a callback run for each yielded file.
func WithOnVisit(fn func(path string, depth int) error) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits descent.
//
//	d > 0: directories deeper than d are not read
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// HasExtension reports whether path carries one of the accepted extensions.
func (o WalkOptions) HasExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	_, ok := o.Extensions[strings.ToLower(ext)]

	return ok
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			set[e] = struct{}{}
		}
	}

	return set
}
