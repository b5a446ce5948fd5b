package imgpng

import (
	"image"

	"golang.org/x/image/draw"
)

// Raster is the decoder's output: a flat, row-major sequence of
// width*height 8-bit RGBA pixels (spec.md §3, §6).
type Raster struct {
	Width  int
	Height int
	Pitch  int
	Pix    []Pixel
}

// At returns the pixel at (x, y). It does no bounds checking of its own:
// it indexes Pix at y*Width+x, so an index outside Pix panics and an x of
// Width or more reads from the next row. Unlike stdlib image types, it does
// not return a zero color for out-of-range coordinates.
func (r *Raster) At(x, y int) Pixel {
	return r.Pix[y*r.Width+x]
}

// ToNRGBA bridges the output raster into a standard library image.NRGBA,
// for callers already built around image.Image pipelines.
func (r *Raster) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			p := r.Pix[y*r.Width+x]
			o := img.PixOffset(x, y)
			img.Pix[o+0] = p.R
			img.Pix[o+1] = p.G
			img.Pix[o+2] = p.B
			img.Pix[o+3] = p.A
		}
	}
	return img
}

// Resize scales the raster to the given dimensions using
// golang.org/x/image/draw's approximate bilinear interpolator, matching the
// resizing idiom used by several of the pack's image-processing tools
// (e.g. thumbnail generation ahead of re-encoding).
func (r *Raster) Resize(width, height int) *image.NRGBA {
	src := r.ToNRGBA()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
