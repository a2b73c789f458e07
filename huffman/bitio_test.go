package huffman

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriterEmptyFinishesToSingleFramingByte(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	require.NoError(t, w.finish())
	require.Equal(t, []byte{8}, buf.Bytes())
}

func TestBitWriterByteAlignedFinish(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	require.NoError(t, w.writeByte(0x41))
	require.NoError(t, w.finish())
	require.Equal(t, []byte{0x41, 0x08}, buf.Bytes())
}

func TestBitWriterPartialByteFinish(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	require.NoError(t, w.writeByte(0x41))
	require.NoError(t, w.writeBits([]byte{1}))
	require.NoError(t, w.finish())
	require.Equal(t, []byte{0x41, 0x80, 0x01}, buf.Bytes())
}

func TestBitReaderRoundTripsBitsAndBytes(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	require.NoError(t, w.writeBits([]byte{1, 0, 1}))
	require.NoError(t, w.writeByte(0x7F))
	require.NoError(t, w.finish())

	r, err := newBitReader(buf.Bytes())
	require.NoError(t, err)

	for _, want := range []int{1, 0, 1} {
		bit, end, err := r.readBit()
		require.NoError(t, err)
		require.False(t, end)
		require.Equal(t, want, bit)
	}

	b, end, err := r.readByte()
	require.NoError(t, err)
	require.False(t, end)
	require.Equal(t, byte(0x7F), b)

	_, end, err = r.readBit()
	require.NoError(t, err)
	require.True(t, end, "reader must signal end exactly at the boundary the framing byte describes")
}

func TestBitReaderEmptyStreamEndsImmediately(t *testing.T) {
	r, err := newBitReader([]byte{8})
	require.NoError(t, err)
	_, end, err := r.readBit()
	require.NoError(t, err)
	require.True(t, end)
}

func TestBitReaderRejectsMissingFramingByte(t *testing.T) {
	_, err := newBitReader(nil)
	require.Error(t, err)
}

func TestBitReaderRejectsInvalidFramingByte(t *testing.T) {
	_, err := newBitReader([]byte{0x41, 0})
	require.Error(t, err)
	_, err = newBitReader([]byte{0x41, 9})
	require.Error(t, err)
}
