package normalizer

import "github.com/mavlink-go/mavgen/internal/ir"

// crcTable is the standard CRC-16/MCRF4XX (reflected, polynomial 0x8408)
// lookup table used throughout the MAVLink ecosystem, including the Rust
// generator this specification was distilled from. Precomputing it once
// avoids recomputing the bit-reflection loop per accumulated byte.
var crcTable = func() [256]uint16 {
	var table [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ 0x8408
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}()

func crcAccumulate(crc uint16, data byte) uint16 {
	idx := byte(crc) ^ data
	return (crc >> 8) ^ crcTable[idx]
}

func crcAccumulateString(crc uint16, s string) uint16 {
	for i := 0; i < len(s); i++ {
		crc = crcAccumulate(crc, s[i])
	}
	return crc
}

// extraCRC implements spec.md §4.4.6: CRC-16/MCRF4XX over the message name,
// a space, then for each *regular* field in final (post-reorder) order, its
// XML type spelling, a space, its XML name, a space, and (for array fields)
// the array length as a raw byte. Extension fields never participate. The
// final extra_crc byte is low8(crc) XOR high8(crc).
func extraCRC(name string, fields []ir.Field) uint8 {
	crc := uint16(0xFFFF)
	crc = crcAccumulateString(crc, name)
	crc = crcAccumulate(crc, ' ')
	for _, f := range fields {
		crc = crcAccumulateString(crc, f.XMLType)
		crc = crcAccumulate(crc, ' ')
		crc = crcAccumulateString(crc, string(f.Name))
		crc = crcAccumulate(crc, ' ')
		if f.Type.Array {
			crc = crcAccumulate(crc, f.Type.Len)
		}
	}
	return byte(crc) ^ byte(crc>>8)
}
