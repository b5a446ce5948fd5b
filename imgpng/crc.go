package imgpng

import "hash/crc32"

// crc32ChunkChecksum computes the CRC-32/IEEE checksum the PNG spec requires
// over a chunk's type code and payload. The core does not verify this by
// default (spec.md §4.3, §9); Options.VerifyCRC opts in.
func crc32ChunkChecksum(typ string, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write([]byte(typ))
	h.Write(data)
	return h.Sum32()
}
