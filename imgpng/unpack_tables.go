package imgpng

// Precomputed per-(bit_depth) unpack tables mapping a source byte to its
// packed sample values, most-significant field first (spec.md §9's "Design
// Notes" recommend this to eliminate per-bit conditionals from the hot
// loop). Each table is indexed [byte value][field index].
var (
	unpack1 [256][8]uint8
	unpack2 [256][4]uint8
	unpack4 [256][2]uint8
)

func init() {
	for v := 0; v < 256; v++ {
		b := uint8(v)
		for i := 0; i < 8; i++ {
			unpack1[v][i] = (b >> uint(7-i)) & 0x01
		}
		for i := 0; i < 4; i++ {
			unpack2[v][i] = (b >> uint(6-2*i)) & 0x03
		}
		for i := 0; i < 2; i++ {
			unpack4[v][i] = (b >> uint(4-4*i)) & 0x0F
		}
	}
}
