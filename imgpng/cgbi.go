package imgpng

// applyCgBI reverses Apple's CgBI framing: samples are stored BGRA instead
// of RGBA, and color channels are premultiplied by alpha. This is a
// supplemented, opt-in feature (SPEC_FULL.md §4) grounded in the teacher
// repository, whose entire purpose was normalizing CgBI-framed PNGs
// produced by Xcode's PNG crush step. It only runs for TrueColorWithAlpha
// and GreyscaleWithAlpha images, the only color types Xcode emits CgBI for;
// colorType gates that restriction explicitly rather than leaving it to an
// accident of GreyscaleWithAlpha's R==G==B making the swap a no-op.
func applyCgBI(colorType uint8, pix []Pixel) {
	if colorType != ColorTrueColorWithAlpha && colorType != ColorGreyscaleWithAlpha {
		return
	}
	for i, p := range pix {
		p.R, p.B = p.B, p.R
		if p.A != 0 && p.A != 255 {
			p.R = unpremultiply(p.R, p.A)
			p.G = unpremultiply(p.G, p.A)
			p.B = unpremultiply(p.B, p.A)
		}
		pix[i] = p
	}
}

func unpremultiply(c, a uint8) uint8 {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
