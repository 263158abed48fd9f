/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reader.go
Description: Bounds-checked binary reader for X431 log buffers. Provides little-endian
scalar reads at explicit offsets over an immutable byte buffer. Every read validates
bounds and surfaces a StructuralError instead of faulting on truncated files.
*/

package x431

import "encoding/binary"

// Reader wraps a raw X431 file buffer and exposes scalar reads at explicit
// offsets. The buffer is never mutated; all position state is caller-owned.
type Reader struct {
	data []byte
}

// NewReader creates a reader over a fully-loaded file buffer
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the buffer size in bytes
func (r *Reader) Len() int {
	return len(r.data)
}

// check validates that n bytes are readable at offset
func (r *Reader) check(section string, offset, n int) error {
	if offset < 0 || n < 0 || offset+n > len(r.data) {
		return &StructuralError{Section: section, Offset: offset, Need: n, Size: len(r.data)}
	}
	return nil
}

// Uint8 reads an unsigned 8-bit integer at offset
func (r *Reader) Uint8(section string, offset int) (uint8, error) {
	if err := r.check(section, offset, 1); err != nil {
		return 0, err
	}
	return r.data[offset], nil
}

// Uint16 reads an unsigned 16-bit little-endian integer at offset
func (r *Reader) Uint16(section string, offset int) (uint16, error) {
	if err := r.check(section, offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.data[offset:]), nil
}

// Uint32 reads an unsigned 32-bit little-endian integer at offset
func (r *Reader) Uint32(section string, offset int) (uint32, error) {
	if err := r.check(section, offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.data[offset:]), nil
}

// Bytes returns n bytes starting at offset. The returned slice aliases the
// underlying buffer and must not be modified.
func (r *Reader) Bytes(section string, offset, n int) ([]byte, error) {
	if err := r.check(section, offset, n); err != nil {
		return nil, err
	}
	return r.data[offset : offset+n], nil
}
