/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: layout.go
Description: Fixed file layout for LAUNCH X431 diagnostic logs. Collects the known
header offsets, the index bias convention, and the section locator reads that
describe channel count and the position of the data-record section.
*/

package x431

const (
	// offPreambleLen is a uint32 length describing the variable preamble
	// that precedes the point value table.
	offPreambleLen = 0x0c

	// offDataPointer is a uint16 pointer to the data-record section;
	// the section itself starts 8 bytes past the pointed-to offset.
	offDataPointer = 0x11c

	// offChannelCount holds channel_count * 4 in a single byte.
	offChannelCount = 0x134

	// offHeaderIndices is the first of two passes of per-channel index slots.
	offHeaderIndices = 0x138

	// indexBias is subtracted from every raw stored index before it is used
	// as a position in the point value table.
	indexBias = 0x09

	// slotSize is the width of one index slot; only the low 16 bits carry
	// the index, the remaining bytes are reserved.
	slotSize = 4

	// preambleSections is the number of length-prefixed sections between the
	// preamble and the point value table.
	preambleSections = 8
)

// Placeholder values emitted when index resolution fails. Both are part of
// the output contract and must be preserved verbatim.
const (
	UnknownName     = "Unknown"
	cellPlaceholder = "0"
)

// channelCount reads the channel count from the fixed header byte.
// A count of zero means the file carries no channels at all; every later
// stage divides by the count, so reject it here as structural.
func channelCount(r *Reader) (int, error) {
	raw, err := r.Uint8("channel count", offChannelCount)
	if err != nil {
		return 0, err
	}
	count := int(raw) / 4
	if count == 0 {
		return 0, &StructuralError{Section: "channel count", Offset: offChannelCount, Need: 1, Size: r.Len()}
	}
	return count, nil
}

// dataSection locates the data-record section. Returns the offset of the
// first cell slot and the raw record count.
func dataSection(r *Reader) (int, uint32, error) {
	pointer, err := r.Uint16("data pointer", offDataPointer)
	if err != nil {
		return 0, 0, err
	}

	countOffset := int(pointer) + 8
	records, err := r.Uint32("record count", countOffset)
	if err != nil {
		return 0, 0, err
	}

	return countOffset + 8, records, nil
}
