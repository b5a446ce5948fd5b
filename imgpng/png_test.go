package imgpng

import (
	"bytes"
	"image"
	stdpng "image/png"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPNG assembles a minimal, valid PNG byte stream from pre-filtered,
// uncompressed scanline bytes (each already prefixed with its filter-type
// byte), compressing them with a real zlib writer so the pipeline exercises
// genuine DEFLATE decompression.
func buildPNG(t *testing.T, ihdr []byte, palette []byte, scanlines []byte, trns []byte) []byte {
	t.Helper()
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	_, err := zw.Write(scanlines)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var out bytes.Buffer
	out.Write(pngSignature[:])
	out.Write(buildChunk(chunkIHDR, ihdr, false))
	if palette != nil {
		out.Write(buildChunk(chunkPLTE, palette, false))
	}
	if trns != nil {
		out.Write(buildChunk(chunkTRNS, trns, false))
	}
	out.Write(buildChunk(chunkIDAT, compressed.Bytes(), false))
	out.Write(buildChunk(chunkIEND, nil, false))
	return out.Bytes()
}

func TestDecodeMinimumValidImage(t *testing.T) {
	// Scenario 1.
	ihdr := ihdrPayload(1, 1, 8, ColorTrueColorWithAlpha, 0, 0, 0)
	scanline := []byte{filterNone, 255, 128, 64, 200}
	data := buildPNG(t, ihdr, nil, scanline, nil)

	raster, err := Decode(data, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, raster.Width)
	assert.Equal(t, 1, raster.Height)
	assert.Equal(t, Pixel{255, 128, 64, 200}, raster.At(0, 0))
}

func TestDecodeRejectsBadSignature(t *testing.T) {
	// Scenario 5.
	data := []byte{0x89, 'P', 'N', 'G', 0, 0, 0, 0}
	_, err := Decode(data, Options{})
	require.Error(t, err)
	assert.True(t, IsInvalidHeader(err))
}

func TestDecodeRejectsMissingIHDR(t *testing.T) {
	// Scenario 6.
	var buf bytes.Buffer
	buf.Write(pngSignature[:])
	buf.Write(buildChunk(chunkIDAT, []byte{1, 2, 3}, false))

	_, err := Decode(buf.Bytes(), Options{})
	require.Error(t, err)
	assert.True(t, IsInvalidFormat(err))
}

func TestDecodeRejectsInterlaced(t *testing.T) {
	// Scenario 7.
	ihdr := ihdrPayload(4, 4, 8, ColorTrueColorWithAlpha, 0, 0, 1)
	var buf bytes.Buffer
	buf.Write(pngSignature[:])
	buf.Write(buildChunk(chunkIHDR, ihdr, false))

	_, err := Decode(buf.Bytes(), Options{})
	require.Error(t, err)
	assert.True(t, IsInvalidFormat(err))
}

func TestDecodeIndexedWithPaletteAndTRNS(t *testing.T) {
	ihdr := ihdrPayload(2, 1, 8, ColorIndexed, 0, 0, 0)
	palette := []byte{
		255, 0, 0,
		0, 255, 0,
	}
	trns := []byte{128, 255}
	scanline := []byte{filterNone, 0, 1}

	data := buildPNG(t, ihdr, palette, scanline, trns)

	raster, err := Decode(data, Options{ApplyTRNS: true})
	require.NoError(t, err)
	assert.EqualValues(t, 128, raster.At(0, 0).A)
	assert.EqualValues(t, 255, raster.At(1, 0).A)

	// Without the option, alpha stays the PLTE default of 255.
	raster, err = Decode(data, Options{})
	require.NoError(t, err)
	assert.EqualValues(t, 255, raster.At(0, 0).A)
}

func TestDecodeIndexedMissingPalette(t *testing.T) {
	ihdr := ihdrPayload(2, 1, 8, ColorIndexed, 0, 0, 0)
	scanline := []byte{filterNone, 0, 0}
	data := buildPNG(t, ihdr, nil, scanline, nil)

	_, err := Decode(data, Options{})
	require.Error(t, err)
}

func TestDecodeIsPureFunction(t *testing.T) {
	ihdr := ihdrPayload(1, 1, 8, ColorTrueColorWithAlpha, 0, 0, 0)
	scanline := []byte{filterNone, 1, 2, 3, 4}
	data := buildPNG(t, ihdr, nil, scanline, nil)

	r1, err := Decode(data, Options{})
	require.NoError(t, err)
	r2, err := Decode(data, Options{})
	require.NoError(t, err)
	assert.Equal(t, r1.Pix, r2.Pix)
}

func TestDecodeAgreesWithStandardLibraryDecoder(t *testing.T) {
	var ref bytes.Buffer
	// Build a small reference image, encode it with the standard library,
	// then confirm this package's decode produces the same pixels as the
	// standard library's own decoder.
	const w, h = 4, 3
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := img.PixOffset(x, y)
			img.Pix[o+0] = uint8(x * 50)
			img.Pix[o+1] = uint8(y * 60)
			img.Pix[o+2] = uint8((x + y) * 20)
			img.Pix[o+3] = 255
		}
	}
	require.NoError(t, stdpng.Encode(&ref, img))

	want, err := stdpng.Decode(bytes.NewReader(ref.Bytes()))
	require.NoError(t, err)

	raster, err := Decode(ref.Bytes(), Options{})
	require.NoError(t, err)
	require.Equal(t, w, raster.Width)
	require.Equal(t, h, raster.Height)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := want.At(x, y).RGBA()
			got := raster.At(x, y)
			assert.EqualValues(t, r>>8, got.R, "x=%d y=%d", x, y)
			assert.EqualValues(t, g>>8, got.G, "x=%d y=%d", x, y)
			assert.EqualValues(t, b>>8, got.B, "x=%d y=%d", x, y)
			assert.EqualValues(t, a>>8, got.A, "x=%d y=%d", x, y)
		}
	}
}
