package imgpng

import "encoding/binary"

// readUint32BE reads a big-endian 32-bit unsigned integer from the first
// four bytes of b. The caller guarantees len(b) >= 4; no bounds checking or
// sign extension is performed.
func readUint32BE(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// readUint16BE reads a big-endian 16-bit unsigned integer from the first two
// bytes of b.
func readUint16BE(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}
