/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fixture_test.go
Description: Synthetic X431 file builder for decoder tests. Assembles byte buffers
with the real layout (fixed header offsets, preamble, length-prefixed sections,
sentinel-terminated string table, data-record section) from declarative parts.
*/

package x431

import "encoding/binary"

// fileBuilder assembles a synthetic X431 buffer. Zero values give a minimal
// well-formed file; individual fields can be skewed to exercise edge cases.
type fileBuilder struct {
	channels     int      // channel count (header byte = channels * 4)
	values       []string // point value table contents
	primary      []uint16 // raw pass-1 indices, one per channel
	secondary    []uint16 // raw pass-2 indices, one per channel
	cells        []uint16 // raw data cell indices, written in order
	records      uint32   // raw record count (rows = records/4/channels)
	omitSentinel bool     // skip the terminating zero length prefix
}

func put16(buf []byte, offset int, v uint16) {
	binary.LittleEndian.PutUint16(buf[offset:], v)
}

func put32(buf []byte, offset int, v uint32) {
	binary.LittleEndian.PutUint32(buf[offset:], v)
}

// build produces the file buffer
func (b *fileBuilder) build() []byte {
	// Header region, then string table, then data section.
	stringStart := offHeaderIndices + 2*b.channels*slotSize

	size := stringStart + 2*preambleSections
	for _, v := range b.values {
		size += 2 + len(v) + 1
	}
	if !b.omitSentinel {
		size += 2
	}
	dataStart := size
	size += 8 + len(b.cells)*slotSize

	buf := make([]byte, size)

	// Fixed header fields
	buf[offChannelCount] = byte(b.channels * 4)
	put32(buf, offPreambleLen, uint32(stringStart-offPreambleLen-4))
	put16(buf, offDataPointer, uint16(dataStart-8))

	// Header index slots, pass 1 then pass 2
	offset := offHeaderIndices
	for i := 0; i < b.channels; i++ {
		if i < len(b.primary) {
			put16(buf, offset, b.primary[i])
		}
		offset += slotSize
	}
	for i := 0; i < b.channels; i++ {
		if i < len(b.secondary) {
			put16(buf, offset, b.secondary[i])
		}
		offset += slotSize
	}

	// Eight empty length-prefixed sections (length includes its own prefix)
	offset = stringStart
	for i := 0; i < preambleSections; i++ {
		put16(buf, offset, 2)
		offset += 2
	}

	// String entries: length = payload + 3, entry spans length - 2 bytes
	// past the prefix (payload plus one terminator byte)
	for _, v := range b.values {
		put16(buf, offset, uint16(len(v)+3))
		offset += 2
		copy(buf[offset:], v)
		offset += len(v) + 1
	}
	if !b.omitSentinel {
		put16(buf, offset, 0)
		offset += 2
	}

	// Data section: record count, 4 reserved bytes, then cell slots
	put32(buf, dataStart, b.records)
	offset = dataStart + 8
	for _, c := range b.cells {
		put16(buf, offset, c)
		offset += slotSize
	}

	return buf
}
