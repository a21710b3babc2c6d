// Package utf8 provides a resumable UTF-8 codec with the same chunked contract
// as the UTF-7 state machines, so the two can be paired by a converter.
package utf8

import (
	"fmt"
	"unicode"
	stdutf8 "unicode/utf8"

	"github.com/zoobzio/utf7"
)

// Encoder is a resumable UTF-8 encoder. It is not safe for concurrent use.
type Encoder struct {
	queue [stdutf8.UTFMax]byte
	off   int
	n     int
}

// NewEncoder returns a UTF-8 encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes the UTF-8 encoding of r at the cursor.
// It returns StatusFull without accepting r while earlier output is still queued.
// Encode panics if r is not a Unicode scalar value.
func (e *Encoder) Encode(c *utf7.Cursor, r rune) utf7.Status {
	if r < 0 || r > unicode.MaxRune || (r >= 0xd800 && r < 0xe000) {
		panic(fmt.Sprintf("utf8: rune %#x is not a scalar value", r))
	}
	if !e.drain(c) {
		return utf7.StatusFull
	}
	e.n = stdutf8.EncodeRune(e.queue[:], r)
	e.drain(c)
	return utf7.StatusOK
}

// Flush writes any queued bytes.
func (e *Encoder) Flush(c *utf7.Cursor) utf7.Status {
	if !e.drain(c) {
		return utf7.StatusFull
	}
	return utf7.StatusOK
}

// Reset discards queued output.
func (e *Encoder) Reset() {
	e.off, e.n = 0, 0
}

func (e *Encoder) drain(c *utf7.Cursor) bool {
	e.off += c.Put(e.queue[e.off:e.n])
	if e.off < e.n {
		return false
	}
	e.off, e.n = 0, 0
	return true
}

// Decoder is a resumable UTF-8 decoder. A sequence split across chunks is
// buffered until its last byte arrives. It is not safe for concurrent use.
type Decoder struct {
	seq  [stdutf8.UTFMax]byte
	n    int // bytes buffered
	need int // length of the sequence being buffered
}

// NewDecoder returns a UTF-8 decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset discards a partially buffered sequence.
func (d *Decoder) Reset() {
	d.n, d.need = 0, 0
}

// Decode consumes bytes from the cursor until it can return a rune.
//
// Overlong forms, surrogates, values above U+10FFFF, stray continuation bytes
// and truncated sequences followed by a new lead byte are invalid; the cursor
// is left at the offending byte.
func (d *Decoder) Decode(c *utf7.Cursor) utf7.Result {
	for c.Len() > 0 {
		b := c.Remaining()[0]

		if d.n == 0 {
			if b < stdutf8.RuneSelf {
				c.Advance(1)
				return utf7.RuneResult(rune(b))
			}
			need := sequenceLen(b)
			if need == 0 {
				return utf7.StatusResult(utf7.StatusInvalid)
			}
			d.seq[0] = b
			d.n, d.need = 1, need
			c.Advance(1)
			continue
		}

		if b&0xc0 != 0x80 {
			return utf7.StatusResult(utf7.StatusInvalid)
		}
		d.seq[d.n] = b
		if d.n+1 < d.need {
			// A short prefix that already counts as a full rune is one
			// DecodeRune would reject, so the error points at this byte.
			if stdutf8.FullRune(d.seq[:d.n+1]) {
				return utf7.StatusResult(utf7.StatusInvalid)
			}
			d.n++
			c.Advance(1)
			continue
		}
		r, size := stdutf8.DecodeRune(d.seq[:d.need])
		if r == stdutf8.RuneError && size == 1 {
			return utf7.StatusResult(utf7.StatusInvalid)
		}
		d.n, d.need = 0, 0
		c.Advance(1)
		return utf7.RuneResult(r)
	}
	if d.n > 0 {
		return utf7.StatusResult(utf7.StatusIncomplete)
	}
	return utf7.StatusResult(utf7.StatusOK)
}

func sequenceLen(b byte) int {
	switch {
	case b >= 0xc2 && b <= 0xdf:
		return 2
	case b >= 0xe0 && b <= 0xef:
		return 3
	case b >= 0xf0 && b <= 0xf4:
		return 4
	}
	return 0
}
