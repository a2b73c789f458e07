package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// bitWriter accumulates bits MSB-first into a byte sink, the way
// huffman.Encoder and compress.Stream.Marshal do in the teacher repo, plus
// the framing byte this codec's file format requires at the very end.
type bitWriter struct {
	bw *bitio.Writer
}

func newBitWriter(sink io.Writer) *bitWriter {
	return &bitWriter{bw: bitio.NewWriter(sink)}
}

func (w *bitWriter) writeBits(bits []byte) error {
	for _, b := range bits {
		if err := w.bw.WriteBool(b != 0); err != nil {
			return err
		}
	}
	return nil
}

func (w *bitWriter) writeByte(b byte) error {
	return w.bw.WriteByte(b)
}

// finish flushes any partial byte (zero-padded) and appends the trailing
// framing byte: the number of valid high-order bits in the byte that was
// just flushed (1..8). If nothing was pending, Align reports zero bits
// skipped, which correctly yields a framing value of 8 and the framing byte
// stands alone, per the file format in SPEC_FULL.md §6.
func (w *bitWriter) finish() error {
	skipped, err := w.bw.Align()
	if err != nil {
		return fmt.Errorf("huffman: flushing final byte: %w", err)
	}
	if err := w.bw.WriteByte(8 - skipped); err != nil {
		return fmt.Errorf("huffman: writing framing byte: %w", err)
	}
	return w.bw.Close()
}

// bitReader yields one bit at a time from a complete compressed buffer,
// stopping exactly at the boundary the trailing framing byte describes.
//
// It is built from the whole buffer up front (rather than an arbitrary
// io.Reader) because the framing byte lives at the very end: like the
// reference decoder's fseek(SEEK_END)/rewind, this needs to know the total
// valid bit count before it can hand back a single bit.
type bitReader struct {
	br        *bitio.Reader
	totalBits int
	consumed  int
}

func newBitReader(data []byte) (*bitReader, error) {
	if len(data) == 0 {
		return nil, errors.New("huffman: compressed stream is empty, missing framing byte")
	}

	tail := data[len(data)-1]
	if tail < 1 || tail > 8 {
		return nil, fmt.Errorf("huffman: invalid framing byte %d, want 1..8", tail)
	}

	payload := data[:len(data)-1]
	totalBits := 0
	if len(payload) > 0 {
		totalBits = (len(payload)-1)*8 + int(tail)
	}

	return &bitReader{
		br:        bitio.NewReader(bytes.NewReader(payload)),
		totalBits: totalBits,
	}, nil
}

// readBit returns the next payload bit, or end = true once totalBits bits
// have been consumed. The framing byte itself is never visible to br, so it
// can never be misread as payload.
func (r *bitReader) readBit() (bit int, end bool, err error) {
	if r.consumed >= r.totalBits {
		return 0, true, nil
	}
	b, err := r.br.ReadBool()
	if err != nil {
		return 0, false, fmt.Errorf("huffman: reading bit: %w", err)
	}
	r.consumed++
	if b {
		return 1, false, nil
	}
	return 0, false, nil
}

// readByte assembles eight bits MSB-first. end propagates from the first
// bit that could not be read.
func (r *bitReader) readByte() (b byte, end bool, err error) {
	var v byte
	for i := 0; i < 8; i++ {
		bit, end, err := r.readBit()
		if err != nil {
			return 0, false, err
		}
		if end {
			return 0, true, nil
		}
		v = v<<1 | byte(bit)
	}
	return v, false, nil
}
