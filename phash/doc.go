// Package phash computes 64-bit perceptual fingerprints of raster images.
//
// Two methods are provided:
//
//   - AHash (average hash): the image is resized to 8×8 with a Gaussian filter and
//     converted to grayscale; bit k = y*8+x is set when pixel (x,y) is brighter
//     than the integer mean of all 64 pixels.
//   - DHash (difference hash): the image is resized to 9×8; bit k = y*8+x is set
//     when pixel (x,y) is darker than its right neighbour (x+1,y).
//
// The resize ignores the aspect ratio so every fingerprint samples the full 8×8
// (or 9×8) grid. Similar-looking images produce fingerprints at small Hamming
// distance (see package hamming).
//
// Decoding goes through imaging, which understands JPEG, PNG, GIF, TIFF and BMP;
// WebP is registered by this package.
package phash
