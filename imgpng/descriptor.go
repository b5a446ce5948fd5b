package imgpng

// Color type codes, as per the PNG specification. The numeric values are
// sums of: 1 (palette used), 2 (color used), 4 (alpha channel present).
const (
	ColorGreyscale           = 0
	ColorTrueColor           = 2
	ColorIndexed             = 3
	ColorGreyscaleWithAlpha  = 4
	ColorTrueColorWithAlpha  = 6
)

const ihdrLength = 13

// validBitDepths maps a color type to the set of bit depths the PNG
// specification allows for it (spec.md §3, the validity matrix).
var validBitDepths = map[uint8][]uint8{
	ColorGreyscale:          {1, 2, 4, 8, 16},
	ColorTrueColor:          {8, 16},
	ColorIndexed:            {1, 2, 4, 8},
	ColorGreyscaleWithAlpha: {8, 16},
	ColorTrueColorWithAlpha: {8, 16},
}

// channelsPerPixel gives the number of samples per pixel for a color type,
// ignoring indexed color, whose sample depth is always 8 regardless of
// bitDepth (spec.md, IHDR commentary).
var channelsPerPixel = map[uint8]int{
	ColorGreyscale:          1,
	ColorTrueColor:          3,
	ColorIndexed:            1,
	ColorGreyscaleWithAlpha: 2,
	ColorTrueColorWithAlpha: 4,
}

// ImageDescriptor is the validated result of parsing an IHDR payload. It is
// created once by the header parser and is immutable thereafter.
type ImageDescriptor struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8

	// BitsPerPixel and BytesPerPixel are derived from (ColorType, BitDepth)
	// per spec.md §4.5's samples table.
	BitsPerPixel  int
	BytesPerPixel int
}

// Pitch returns the number of sample bytes per scanline, excluding the
// leading filter-type byte: ceil(bits_per_pixel * width / 8).
func (d *ImageDescriptor) Pitch() int {
	return (d.BitsPerPixel*int(d.Width) + 7) / 8
}

func isRecognizedColorType(ct uint8) bool {
	_, ok := validBitDepths[ct]
	return ok
}

func bitDepthValid(ct, depth uint8) bool {
	for _, d := range validBitDepths[ct] {
		if d == depth {
			return true
		}
	}
	return false
}

// parseIHDR parses the fixed 13-byte IHDR payload into a validated
// ImageDescriptor (spec.md §4.2).
func parseIHDR(data []byte) (*ImageDescriptor, error) {
	if len(data) != ihdrLength {
		return nil, newFormatError("bad IHDR length: got %d, expected %d", len(data), ihdrLength)
	}

	d := &ImageDescriptor{
		Width:             readUint32BE(data[0:4]),
		Height:            readUint32BE(data[4:8]),
		BitDepth:          data[8],
		ColorType:         data[9],
		CompressionMethod: data[10],
		FilterMethod:      data[11],
		InterlaceMethod:   data[12],
	}

	if d.Width == 0 || d.Height == 0 {
		return nil, newFormatError("non-positive dimension: %dx%d", d.Width, d.Height)
	}
	if !isRecognizedColorType(d.ColorType) {
		return nil, newFormatError("unrecognized color type: %d", d.ColorType)
	}
	if !bitDepthValid(d.ColorType, d.BitDepth) {
		return nil, newFormatError("invalid color type/bit depth combination: color type %d, bit depth %d", d.ColorType, d.BitDepth)
	}
	if d.CompressionMethod != 0 {
		return nil, newFormatError("invalid compression method: %d", d.CompressionMethod)
	}
	if d.FilterMethod != 0 {
		return nil, newFormatError("invalid filter method: %d", d.FilterMethod)
	}
	if d.InterlaceMethod != 0 {
		return nil, newFormatError("interlaced images are rejected: interlace method %d", d.InterlaceMethod)
	}

	if d.ColorType == ColorIndexed {
		d.BitsPerPixel = int(d.BitDepth)
	} else {
		d.BitsPerPixel = int(d.BitDepth) * channelsPerPixel[d.ColorType]
	}
	d.BytesPerPixel = (d.BitsPerPixel + 7) / 8
	if d.BytesPerPixel < 1 {
		d.BytesPerPixel = 1
	}

	return d, nil
}
