package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hamtour/hamming"
)

// Sentinel errors for parameter validation.
var (
	// ErrTooFewItems indicates a negative size or a zero cluster count.
	ErrTooFewItems = errors.New("builder: parameter too small")

	// ErrTooManyItems indicates a size the constructor cannot represent.
	ErrTooManyItems = errors.New("builder: parameter too large")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: random source required")
)

// Random returns n uniform codes.
func Random(n int, opts ...BuilderOption) ([]hamming.Item, error) {
	cfg := newConfig(opts)
	if n < 0 {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrTooFewItems)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}

	codes := make([]uint64, n)
	for i := range codes {
		codes[i] = cfg.rng.Uint64()
	}

	return hamming.Items(codes...), nil
}

// Clustered returns n codes scattered around k random centres.
//
// Steps:
//  1. Draw k centres.
//  2. For each item pick a centre, then flip rng.Intn(noise+1) random bits
//     (a bit may flip twice, so the distance to the centre is at most noise).
func Clustered(n, k int, opts ...BuilderOption) ([]hamming.Item, error) {
	cfg := newConfig(opts)
	switch {
	case n < 0:
		return nil, fmt.Errorf("Clustered: n=%d: %w", n, ErrTooFewItems)
	case k < 1:
		return nil, fmt.Errorf("Clustered: k=%d: %w", k, ErrTooFewItems)
	case cfg.rng == nil:
		return nil, fmt.Errorf("Clustered: %w", ErrNeedRandSource)
	}

	r := cfg.rng
	centers := make([]uint64, k)
	for i := range centers {
		centers[i] = r.Uint64()
	}
	codes := make([]uint64, n)
	for i := range codes {
		c := centers[r.Intn(k)]
		for f := r.Intn(cfg.noise + 1); f > 0; f-- {
			c ^= 1 << uint(r.Intn(64))
		}
		codes[i] = c
	}

	return hamming.Items(codes...), nil
}

// Chain returns n codes where code i has its low i bits set.
func Chain(n int) ([]hamming.Item, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("Chain: n=%d: %w", n, ErrTooFewItems)
	case n > hamming.MaxDistance+1:
		return nil, fmt.Errorf("Chain: n=%d > %d: %w", n, hamming.MaxDistance+1, ErrTooManyItems)
	}

	codes := make([]uint64, n)
	for i := range codes {
		if i == 64 {
			codes[i] = ^uint64(0)
			continue
		}
		codes[i] = 1<<uint(i) - 1
	}

	return hamming.Items(codes...), nil
}

// MustClustered is Clustered for fixtures; it panics on error.
func MustClustered(n, k int, opts ...BuilderOption) []hamming.Item {
	items, err := Clustered(n, k, opts...)
	if err != nil {
		panic(err)
	}

	return items
}
