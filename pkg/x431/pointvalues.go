/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pointvalues.go
Description: Point value table extraction for X431 logs. Walks the variable preamble
and the eight length-prefixed header sections, then collects the sentinel-terminated
run of length-prefixed strings that all header and cell indices resolve into.
*/

package x431

import "strings"

// PointValueTable is the ordered string table extracted from a single file.
// It is built exactly once per parse and read-only afterwards; headers and
// data cells resolve into it through the index bias convention.
type PointValueTable []string

// Resolve maps a raw stored index to its table entry. A zero index, an index
// that goes negative after the bias, or one past the end of the table is a
// resolution miss, reported through the second return value and never an error.
func (t PointValueTable) Resolve(index uint16) (string, bool) {
	if index == 0 {
		return "", false
	}
	pos := int(index) - indexBias
	if pos < 0 || pos >= len(t) {
		return "", false
	}
	return t[pos], true
}

// extractPointValues builds the point value table.
//
// Layout: a uint32 preamble length at offPreambleLen, the preamble itself,
// then preambleSections sections each led by a uint16 length that includes
// its own two bytes. After those, string entries repeat: uint16 length L,
// payload of L-3 bytes, one implicit terminator byte (the entry spans L-2
// bytes past its prefix). A length below 3, or a payload that would run past
// the buffer, is the designed termination sentinel.
func extractPointValues(r *Reader) (PointValueTable, error) {
	preamble, err := r.Uint32("string table preamble", offPreambleLen)
	if err != nil {
		return nil, err
	}
	offset := offPreambleLen + 4 + int(preamble)

	for i := 0; i < preambleSections; i++ {
		sectionLen, err := r.Uint16("string table sections", offset)
		if err != nil {
			return nil, err
		}
		// The length counts its own prefix; anything shorter cannot advance.
		if sectionLen < 2 || offset+int(sectionLen) > r.Len() {
			return nil, &StructuralError{Section: "string table sections", Offset: offset, Need: int(sectionLen), Size: r.Len()}
		}
		offset += int(sectionLen)
	}

	var table PointValueTable
	for offset+2 <= r.Len() {
		entryLen, err := r.Uint16("string table entries", offset)
		if err != nil {
			return nil, err
		}
		offset += 2

		if entryLen < 3 || offset+int(entryLen)-2 > r.Len() {
			break // termination sentinel, not an error
		}

		payload, err := r.Bytes("string table entries", offset, int(entryLen)-3)
		if err != nil {
			return nil, err
		}
		table = append(table, strings.ToValidUTF8(string(payload), "�"))
		offset += int(entryLen) - 2
	}

	return table, nil
}
