package imgpng

import (
	"encoding/binary"
	"io"
)

// Chunk type codes the walker recognizes by name. Everything else is an
// ancillary chunk tolerated and skipped silently (spec.md §4.3).
const (
	chunkIHDR = "IHDR"
	chunkPLTE = "PLTE"
	chunkIDAT = "IDAT"
	chunkIEND = "IEND"
	chunkSBIT = "sBIT"
	chunkTRNS = "tRNS"
	chunkCgBI = "CgBI"
)

// paletteEntry is one RGB triplet of a PLTE chunk. A defaults to 255; it is
// overridden per-index by applyTRNSToPalette when a tRNS chunk accompanies
// an IndexedColor image and the caller opts in (spec.md §3 plus the
// supplemented tRNS handling in SPEC_FULL.md).
type paletteEntry struct {
	R, G, B, A uint8
}

// walkResult accumulates everything the chunk walker collects while
// advancing over the chunk sequence (spec.md §3's "Lifecycles").
type walkResult struct {
	descriptor *ImageDescriptor
	idatParts  [][]byte
	palette    []paletteEntry
	sbit       [4]byte
	trns       []byte
	sawCgBI    bool
}

// rawChunk is one length-prefixed, type-tagged record of the PNG wire
// format. The trailing CRC is read but, per spec.md §4.3, not verified
// unless the caller opts in via Options.VerifyCRC.
type rawChunk struct {
	length uint32
	typ    string
	data   []byte
	crc    uint32
}

func readChunk(r io.Reader) (*rawChunk, error) {
	var head [8]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, newFormatError("truncated chunk header")
		}
		return nil, err
	}
	length := binary.BigEndian.Uint32(head[:4])
	typ := string(head[4:8])

	data := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, data); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, newFormatError("truncated chunk %q: expected %d payload bytes", typ, length)
			}
			return nil, err
		}
	}

	var crcBuf [4]byte
	if _, err := io.ReadFull(r, crcBuf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, newFormatError("truncated chunk %q: missing CRC", typ)
		}
		return nil, err
	}

	return &rawChunk{
		length: length,
		typ:    typ,
		data:   data,
		crc:    binary.BigEndian.Uint32(crcBuf[:]),
	}, nil
}

// walkChunks advances over the sequence of chunks following the 8-byte PNG
// signature, routing each payload to a handler keyed by its type code
// (spec.md §4.3). It stops after IEND.
func walkChunks(r io.Reader, opts Options) (*walkResult, error) {
	res := &walkResult{}
	seenIHDR := false
	needIHDR := true
	isFirst := true

	for {
		c, err := readChunk(r)
		if err != nil {
			return nil, err
		}

		if opts.VerifyCRC {
			if err := verifyCRC(c); err != nil {
				return nil, err
			}
		}

		if isFirst {
			isFirst = false
			if c.typ == chunkCgBI {
				res.sawCgBI = opts.AllowCgBI
				logger.Debugw("tolerating CgBI framing", "length", c.length, "applied", opts.AllowCgBI)
				continue
			}
		}

		if needIHDR {
			if c.typ != chunkIHDR {
				return nil, newFormatError("IHDR chunk is not first (found %q)", c.typ)
			}
			needIHDR = false
		}

		switch c.typ {
		case chunkIHDR:
			if seenIHDR {
				return nil, newFormatError("duplicate IHDR chunk")
			}
			descriptor, err := parseIHDR(c.data)
			if err != nil {
				return nil, err
			}
			res.descriptor = descriptor
			seenIHDR = true

		case chunkPLTE:
			if !seenIHDR {
				return nil, newFormatError("PLTE chunk before IHDR")
			}
			if len(c.data)%3 != 0 {
				return nil, newFormatError("PLTE length %d is not a multiple of 3", len(c.data))
			}
			palette := make([]paletteEntry, len(c.data)/3)
			for i := range palette {
				palette[i] = paletteEntry{
					R: c.data[i*3+0],
					G: c.data[i*3+1],
					B: c.data[i*3+2],
					A: 255,
				}
			}
			res.palette = palette

		case chunkIDAT:
			if !seenIHDR {
				return nil, newFormatError("IDAT chunk before IHDR")
			}
			res.idatParts = append(res.idatParts, c.data)

		case chunkSBIT:
			copy(res.sbit[:], c.data)

		case chunkTRNS:
			res.trns = append([]byte(nil), c.data...)

		case chunkIEND:
			if !seenIHDR {
				return nil, newFormatError("missing IHDR chunk")
			}
			return res, nil

		default:
			logger.Debugw("skipping ancillary chunk", "type", c.typ, "length", c.length)
		}
	}
}

func verifyCRC(c *rawChunk) error {
	sum := crc32ChunkChecksum(c.typ, c.data)
	if sum != c.crc {
		return newFormatError("CRC mismatch on %q chunk: got %08x, want %08x", c.typ, c.crc, sum)
	}
	return nil
}
