/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reader_test.go
Description: Tests for the bounds-checked binary reader. Verifies little-endian
decoding and structural errors on out-of-range reads.
*/

package x431

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReaderScalars verifies little-endian reads at explicit offsets
func TestReaderScalars(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

	b, err := r.Uint8("test", 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), b)

	u16, err := r.Uint16("test", 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0302), u16)

	u32, err := r.Uint32("test", 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x05040302), u32)
}

// TestReaderBounds verifies structural errors instead of faults
func TestReaderBounds(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})

	_, err := r.Uint32("test section", 0)
	require.Error(t, err)
	assert.True(t, IsStructural(err))
	assert.Contains(t, err.Error(), "test section")

	_, err = r.Uint16("test", 1)
	assert.True(t, IsStructural(err))

	_, err = r.Uint8("test", -1)
	assert.True(t, IsStructural(err))

	_, err = r.Bytes("test", 0, 3)
	assert.True(t, IsStructural(err))
}
