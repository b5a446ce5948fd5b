package imgpng

// applyTRNSToPalette overrides the implicit alpha=255 of palette entries
// with the per-index alpha values carried by a tRNS chunk (spec.md §3 notes
// the palette's alpha is "implicitly 255"; the tRNS chunk, tolerated but
// otherwise unused by the core per spec.md §4.3, is where PNG's simple
// transparency for IndexedColor images lives). Entries beyond len(trns)
// keep alpha 255, per the PNG specification.
func applyTRNSToPalette(palette []paletteEntry, trns []byte) {
	for i, a := range trns {
		if i >= len(palette) {
			break
		}
		palette[i].A = a
	}
}

// applyTRNSToSamples promotes PNG simple transparency for Greyscale and
// TrueColor images: the tRNS chunk names a single sample value to be
// treated as fully transparent, compared against the decoded 8-bit value
// (spec.md is silent on tRNS; this follows the PNG specification's
// standard behavior, applied only when the caller opts in via
// Options.ApplyTRNS).
func applyTRNSToSamples(desc *ImageDescriptor, trns []byte, pix []Pixel) error {
	switch desc.ColorType {
	case ColorGreyscale:
		if len(trns) < 2 {
			return newFormatError("tRNS chunk too short for greyscale: %d bytes", len(trns))
		}
		transparent := transparentSample(desc.BitDepth, trns[0:2])
		for i := range pix {
			if sampleMatches(pix[i], transparent) {
				pix[i].A = 0
			}
		}

	case ColorTrueColor:
		if len(trns) < 6 {
			return newFormatError("tRNS chunk too short for truecolor: %d bytes", len(trns))
		}
		tr := transparentSample(desc.BitDepth, trns[0:2])
		tg := transparentSample(desc.BitDepth, trns[2:4])
		tb := transparentSample(desc.BitDepth, trns[4:6])
		for i := range pix {
			if pix[i].R == tr && pix[i].G == tg && pix[i].B == tb {
				pix[i].A = 0
			}
		}

	default:
		return newFormatError("tRNS chunk is not permitted for color type %d", desc.ColorType)
	}

	return nil
}

// transparentSample reinterprets a 2-byte tRNS sample (always stored at
// 16-bit width regardless of the image's bit depth) as the 8-bit value that
// would appear in the decoded output, so it can be compared against decoded
// pixel channels.
func transparentSample(bitDepth uint8, raw []byte) uint8 {
	v := readUint16BE(raw)
	if bitDepth == 16 {
		return scale16to8(v)
	}
	switch bitDepth {
	case 1:
		return uint8(v) * 255
	case 2:
		return uint8(v) * 85
	case 4:
		return uint8(v) * 17
	default: // 8
		return uint8(v)
	}
}

func sampleMatches(p Pixel, v uint8) bool {
	return p.R == v && p.G == v && p.B == v
}
