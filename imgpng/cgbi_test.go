package imgpng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCgBISwapsChannels(t *testing.T) {
	pix := []Pixel{{R: 10, G: 20, B: 30, A: 255}}
	applyCgBI(ColorTrueColorWithAlpha, pix)
	assert.Equal(t, Pixel{R: 30, G: 20, B: 10, A: 255}, pix[0])
}

func TestApplyCgBIUnpremultipliesAlpha(t *testing.T) {
	// Premultiplied: stored B=100 (pre-swap R channel) at alpha=128 means
	// the true straight-alpha red channel is roughly 100*255/128.
	pix := []Pixel{{R: 50, G: 50, B: 100, A: 128}}
	applyCgBI(ColorTrueColorWithAlpha, pix)
	// After the BGRA->RGBA swap, R holds the original B (100), which gets
	// un-premultiplied by alpha=128.
	assert.Equal(t, unpremultiply(100, 128), pix[0].R)
	assert.EqualValues(t, 128, pix[0].A)
}

func TestApplyCgBILeavesFullyOpaqueOrTransparentAlone(t *testing.T) {
	pix := []Pixel{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 4, G: 5, B: 6, A: 0},
	}
	applyCgBI(ColorTrueColorWithAlpha, pix)
	assert.Equal(t, Pixel{R: 3, G: 2, B: 1, A: 255}, pix[0])
	assert.Equal(t, Pixel{R: 6, G: 5, B: 4, A: 0}, pix[1])
}

func TestApplyCgBIGreyscaleWithAlphaIsNoOpByChannelSymmetry(t *testing.T) {
	pix := []Pixel{{R: 7, G: 7, B: 7, A: 255}}
	applyCgBI(ColorGreyscaleWithAlpha, pix)
	assert.Equal(t, Pixel{R: 7, G: 7, B: 7, A: 255}, pix[0])
}

func TestApplyCgBISkipsColorTypesWithoutAlpha(t *testing.T) {
	cases := []uint8{ColorGreyscale, ColorTrueColor, ColorIndexed}
	for _, ct := range cases {
		pix := []Pixel{{R: 10, G: 20, B: 30, A: 255}}
		applyCgBI(ct, pix)
		assert.Equal(t, Pixel{R: 10, G: 20, B: 30, A: 255}, pix[0], "color type %d must be left untouched", ct)
	}
}

func TestUnpremultiplyClampsToMax(t *testing.T) {
	assert.EqualValues(t, 255, unpremultiply(255, 1))
}
