package imgpng

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// inflate is the external DEFLATE/zlib collaborator (spec.md §6): it
// consumes a concatenated zlib-wrapped IDAT stream and yields raw,
// filtered-but-decompressed scanline bytes. sizeHint is advisory only; the
// primitive may produce any length.
func inflate(compressed []byte, sizeHint int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, newFormatError("zlib stream: %v", err)
	}
	defer zr.Close()

	buf := bytes.NewBuffer(make([]byte, 0, sizeHint))
	if _, err := io.Copy(buf, zr); err != nil {
		return nil, newFormatError("zlib decompression failed: %v", err)
	}
	return buf.Bytes(), nil
}
