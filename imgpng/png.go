// Package imgpng decodes PNG-encoded byte buffers into a flat RGBA raster.
//
// It implements the core of a PNG decoder: signature verification, the
// chunk walker, filter reversal, and the pixel decoder across the full
// matrix of color-type/bit-depth combinations the PNG specification
// permits. DEFLATE/zlib decompression is delegated to
// github.com/klauspost/compress/zlib; file loading is a thin convenience
// wrapper and not part of the core contract.
package imgpng

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

var pngSignature = [8]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// Options controls opt-in behavior that sits outside spec.md's core
// contract: every zero-value Options{} decodes a standard PNG exactly per
// spec.md's rules.
type Options struct {
	// AllowCgBI reverses the BGRA sample order and alpha premultiplication
	// of an image that carries a leading Apple CgBI chunk (SPEC_FULL.md §4).
	// The chunk itself is skipped whether or not this is set.
	AllowCgBI bool

	// ApplyTRNS promotes a tRNS chunk's simple-transparency sample(s) into
	// the output raster's alpha channel (SPEC_FULL.md §4). Off by default
	// so the base invariant "color types without alpha always emit
	// alpha=255" (spec.md §8) holds without the caller opting in.
	ApplyTRNS bool

	// VerifyCRC checks each chunk's trailing CRC-32. The core does not do
	// this by default (spec.md §4.3, §9).
	VerifyCRC bool
}

// Decode runs the full pipeline described in spec.md §4.6: signature check,
// chunk walk, IDAT concatenation, DEFLATE, filter reversal, pixel unpack.
func Decode(data []byte, opts Options) (*Raster, error) {
	if len(data) < 8 || [8]byte(data[0:8]) != pngSignature {
		return nil, errors.WithStack(InvalidHeaderError{})
	}

	result, err := walkChunks(bytes.NewReader(data[8:]), opts)
	if err != nil {
		return nil, err
	}
	if result.descriptor == nil {
		return nil, newFormatError("missing IHDR chunk")
	}
	desc := result.descriptor

	if desc.ColorType == ColorIndexed && len(result.palette) == 0 {
		return nil, newFormatError("IndexedColor image has no PLTE chunk")
	}

	compressed := make([]byte, 0, lenSum(result.idatParts))
	for _, part := range result.idatParts {
		compressed = append(compressed, part...)
	}

	pitch := desc.Pitch()
	height := int(desc.Height)
	sizeHint := (pitch + 1) * height

	decompressed, err := inflate(compressed, sizeHint)
	if err != nil {
		return nil, err
	}
	wantLen := height * (pitch + 1)
	if len(decompressed) != wantLen {
		return nil, newFormatError("decompressed length %d does not match expected %d", len(decompressed), wantLen)
	}

	if err := reverseFilters(decompressed, height, pitch, desc.BytesPerPixel); err != nil {
		return nil, err
	}

	palette := result.palette
	if opts.ApplyTRNS && desc.ColorType == ColorIndexed && len(result.trns) > 0 {
		applyTRNSToPalette(palette, result.trns)
	}

	width := int(desc.Width)
	pix := make([]Pixel, width*height)
	rowSize := 1 + pitch
	for y := 0; y < height; y++ {
		row := decompressed[y*rowSize+1 : (y+1)*rowSize]
		if err := decodeRow(desc, palette, row, pix[y*width:(y+1)*width]); err != nil {
			return nil, err
		}
	}

	if opts.ApplyTRNS && len(result.trns) > 0 && (desc.ColorType == ColorGreyscale || desc.ColorType == ColorTrueColor) {
		if err := applyTRNSToSamples(desc, result.trns, pix); err != nil {
			return nil, err
		}
	}

	if result.sawCgBI {
		applyCgBI(desc.ColorType, pix)
	}

	return &Raster{
		Width:  width,
		Height: height,
		Pitch:  pitch,
		Pix:    pix,
	}, nil
}

// DecodeFile loads a byte buffer from path and decodes it. It is a
// convenience wrapper, not part of the core (spec.md §6); OS-level I/O
// errors are reported upward wrapped in IOError.
func DecodeFile(path string, opts Options) (*Raster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newIOError(err)
	}
	return Decode(data, opts)
}

func lenSum(parts [][]byte) int {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	return n
}
