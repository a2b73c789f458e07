package huffman

import (
	"bytes"
	"fmt"
)

// DecodeError reports that a compressed stream ended before a symbol or a
// raw NYT byte was fully read. It is distinct from the ordinary, clean end
// of a well-formed stream, which Decompress reports simply by returning
// without error.
type DecodeError struct {
	Msg string
}

func (e *DecodeError) Error() string { return "huffman: " + e.Msg }

func truncated(format string, args ...interface{}) *DecodeError {
	return &DecodeError{Msg: fmt.Sprintf(format, args...)}
}

// Compress encodes data with the FGK adaptive Huffman codec. Compress is
// deterministic: the same input always produces the same output.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data) + 1)

	t := NewTree()
	w := newBitWriter(&buf)

	for _, b := range data {
		if n := t.Lookup(b); n != -1 {
			if err := w.writeBits(t.CodeOf(n)); err != nil {
				return nil, err
			}
			t.Update(n)
			continue
		}

		if err := w.writeBits(t.CodeOf(t.NYT())); err != nil {
			return nil, err
		}
		if err := w.writeByte(b); err != nil {
			return nil, err
		}
		p := t.IntroduceSymbol(b)
		t.Update(p)
	}

	if err := w.finish(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress reconstructs the original byte sequence from data, which must
// be a complete stream produced by Compress (or an equivalent FGK encoder
// sharing the same framing convention).
func Decompress(data []byte) ([]byte, error) {
	r, err := newBitReader(data)
	if err != nil {
		return nil, err
	}

	t := NewTree()
	var out []byte

	for {
		cur := t.Root()
		consumedAny := false

		for !t.IsLeaf(cur) {
			bit, end, err := r.readBit()
			if err != nil {
				return nil, err
			}
			if end {
				if consumedAny {
					return nil, truncated("stream ended mid-codeword")
				}
				return out, nil
			}
			consumedAny = true
			if bit == 0 {
				cur = t.Left(cur)
			} else {
				cur = t.Right(cur)
			}
		}

		if t.IsNYT(cur) {
			c, end, err := r.readByte()
			if err != nil {
				return nil, err
			}
			if end {
				if consumedAny {
					return nil, truncated("stream ended while reading a raw byte after an NYT code")
				}
				// Fresh tree (root is still NYT), no prefix bits consumed
				// this iteration, and no raw byte follows: a totally empty
				// stream, not a truncated one.
				return out, nil
			}
			p := t.IntroduceSymbol(c)
			out = append(out, c)
			t.Update(p)
		} else {
			c := t.Symbol(cur)
			out = append(out, c)
			t.Update(cur)
		}
	}
}
