package phash

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the WebP decoder with image.Decode
)

var (
	// ErrUnknownMethod is returned by ParseMethod and Hasher for unsupported names.
	ErrUnknownMethod = errors.New("phash: unknown hash method")

	// ErrDecode wraps failures to open or decode an image file.
	ErrDecode = errors.New("phash: cannot decode image")
)

// Method selects a fingerprint function.
type Method int

const (
	// AHash is the average hash.
	AHash Method = iota
	// DHash is the difference hash.
	DHash
)

// String returns the flag spelling of m.
func (m Method) String() string {
	switch m {
	case AHash:
		return "ahash"
	case DHash:
		return "dhash"
	default:
		return "unknown"
	}
}

// ParseMethod maps "ahash" or "dhash" (any case) to a Method. Empty selects AHash.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ahash":
		return AHash, nil
	case "dhash":
		return DHash, nil
	default:
		return AHash, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Func maps a decoded image to its fingerprint.
type Func func(img image.Image) uint64

// Hasher returns the fingerprint function for m.
func Hasher(m Method) (Func, error) {
	switch m {
	case AHash:
		return Average, nil
	case DHash:
		return Difference, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}

// Average computes the average hash of img.
//
// Steps:
//  1. Resize to 8×8 (Gaussian) and convert to grayscale.
//  2. mean = floor(Σ gray / 64).
//  3. Set bit y*8+x for every pixel with gray > mean.
//
// Complexity: O(W·H) for the resize, O(1) afterwards.
func Average(img image.Image) uint64 {
	g := imaging.Grayscale(imaging.Resize(img, 8, 8, imaging.Gaussian))

	var sum uint64
	for k := 0; k < 64; k++ {
		sum += uint64(gray(g, k%8, k/8))
	}
	mean := sum / 64

	var h uint64
	for k := 0; k < 64; k++ {
		if uint64(gray(g, k%8, k/8)) > mean {
			h |= 1 << uint(k)
		}
	}

	return h
}

// Difference computes the difference hash of img.
//
// Steps:
//  1. Resize to 9×8 (Gaussian) and convert to grayscale.
//  2. Set bit y*8+x when gray(x,y) < gray(x+1,y).
//
// Complexity: O(W·H) for the resize, O(1) afterwards.
func Difference(img image.Image) uint64 {
	g := imaging.Grayscale(imaging.Resize(img, 9, 8, imaging.Gaussian))

	var h uint64
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if gray(g, x, y) < gray(g, x+1, y) {
				h |= 1 << uint(y*8+x)
			}
		}
	}

	return h
}

// FingerprintFile decodes the image at path and fingerprints it with m.
func FingerprintFile(path string, m Method) (uint64, error) {
	fn, err := Hasher(m)
	if err != nil {
		return 0, err
	}
	img, err := imaging.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return fn(img), nil
}

// gray reads the luminance of a grayscale NRGBA image; R == G == B there.
func gray(g *image.NRGBA, x, y int) uint8 {
	return g.Pix[g.PixOffset(x, y)]
}
