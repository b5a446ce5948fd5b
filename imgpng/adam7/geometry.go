// Package adam7 describes the pass geometry of PNG's Adam7 interlacing
// scheme. It is a supplemented, non-core feature (SPEC_FULL.md §4): the
// core decoder in package imgpng rejects interlaced images outright
// (spec.md §4.2, scenario 7), matching spec.md's Non-goal of excluding
// progressive/interlaced rendering. This package exists only for callers
// that need to inspect an interlaced file's structure without decoding
// pixels from it; it performs no DEFLATE, filtering, or pixel decode of its
// own.
package adam7

import "fmt"

const ihdrLength = 13

// Scan defines the placement and subsampling factor of one Adam7 pass,
// adapted from the teacher's interlaceScan table.
type Scan struct {
	XFactor, YFactor, XOffset, YOffset int
}

// Passes enumerates Adam7's seven reduced images, in transmission order.
var Passes = [7]Scan{
	{8, 8, 0, 0},
	{8, 8, 4, 0},
	{4, 8, 0, 4},
	{4, 4, 2, 0},
	{2, 4, 0, 2},
	{2, 2, 1, 0},
	{1, 2, 0, 1},
}

// IsInterlaced reports whether a raw 13-byte IHDR payload declares Adam7
// interlacing, without applying any of the core decoder's other validation
// or rejection rules. It exists because imgpng.Decode rejects an interlaced
// IHDR outright (spec.md §4.2, scenario 7) before ever handing back an
// ImageDescriptor, leaving no other exported way for a caller to learn "this
// file is interlaced" from the same bytes.
func IsInterlaced(ihdrPayload []byte) (bool, error) {
	if len(ihdrPayload) != ihdrLength {
		return false, fmt.Errorf("adam7: bad IHDR length: got %d, want %d", len(ihdrPayload), ihdrLength)
	}
	return ihdrPayload[12] != 0, nil
}

// PassGeometry returns the width and height, in pixels, of the given pass
// (0-based) of a full image of the given dimensions. A pass can be empty
// (zero width or zero height) for small images; callers must skip emitting
// a scanline for it.
func PassGeometry(pass, width, height int) (w, h int) {
	p := Passes[pass]
	w = (width - p.XOffset + p.XFactor - 1) / p.XFactor
	h = (height - p.YOffset + p.YFactor - 1) / p.YFactor
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}
