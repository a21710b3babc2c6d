package utf7

import (
	"fmt"
	"unicode"
	"unicode/utf16"
)

// Option configures an Encoder.
type Option func(*Encoder)

// WithIndirect marks the optional direct characters in set as indirect: the
// encoder escapes them into base64 instead of writing them literally.
//
// It panics if set names a character that is not optional direct, since the
// mandatory direct set is always literal and every other character is always
// escaped.
func WithIndirect(set string) Option {
	for i := 0; i < len(set); i++ {
		if !IsOptional(set[i]) {
			panic(fmt.Sprintf("utf7: indirect character %q is not an optional direct character", set[i]))
		}
	}
	return func(e *Encoder) {
		for i := 0; i < len(set); i++ {
			e.literal[set[i]] = false
		}
	}
}

// Encoder is a resumable UTF-7 encoder.
//
// Each call renders its rune into a small internal queue and drains the queue
// into the cursor. Bytes that did not fit stay queued for the next call, so
// output regions of any size, down to a single byte, produce the same stream.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	literal [128]bool // immutable after construction

	accum   uint32 // unsent bits, right aligned
	bits    uint   // number of valid bits in accum, always < 6 between calls
	shifted bool

	queue [8]byte
	off   int
	n     int
}

// NewEncoder returns an encoder. Without options every optional direct
// character is written literally.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{}
	for i := range e.literal {
		e.literal[i] = classes[i] != classEscaped
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes the UTF-7 encoding of r at the cursor.
//
// It returns StatusFull without accepting r when bytes queued by an earlier
// call still do not fit; the caller drains the cursor and retries with the same
// rune. Otherwise r is accepted and Encode returns StatusOK, even if part of its
// encoding is still queued.
//
// Surrogate halves are packed verbatim as UTF-16 units, so a pre-split pair
// encodes exactly like the rune it represents. Encode panics if r is negative
// or above unicode.MaxRune.
func (e *Encoder) Encode(c *Cursor, r rune) Status {
	if r < 0 || r > unicode.MaxRune {
		panic(fmt.Sprintf("utf7: rune %#x out of range", r))
	}
	if !e.drain(c) {
		return StatusFull
	}
	e.render(r)
	e.drain(c)
	return StatusOK
}

// Flush closes an open shift run and writes every queued byte.
// It returns StatusFull until the whole stream reached a cursor. Flushing
// outside a shift run writes nothing.
func (e *Encoder) Flush(c *Cursor) Status {
	if !e.drain(c) {
		return StatusFull
	}
	if e.shifted {
		e.unshift(true)
	}
	if !e.drain(c) {
		return StatusFull
	}
	return StatusOK
}

// Reset discards all state except the indirect configuration.
func (e *Encoder) Reset() {
	e.accum, e.bits, e.shifted = 0, 0, false
	e.off, e.n = 0, 0
}

func (e *Encoder) render(r rune) {
	if r < 0x80 && e.literal[r] {
		if e.shifted {
			e.unshift(IsBase64(byte(r)) || r == '-')
		}
		e.put(byte(r))
		return
	}
	if !e.shifted {
		if r == '+' {
			e.put('+')
			e.put('-')
			return
		}
		e.put('+')
		e.shifted = true
	}
	if r >= 0x10000 {
		hi, lo := utf16.EncodeRune(r)
		e.pack(hi)
		e.pack(lo)
		return
	}
	e.pack(r)
}

// pack appends a UTF-16 unit to the accumulator and emits every whole sextet.
func (e *Encoder) pack(unit rune) {
	e.accum = e.accum<<16 | uint32(unit)
	e.bits += 16
	for e.bits >= 6 {
		e.bits -= 6
		e.put(alphabet[e.accum>>e.bits&0x3f])
	}
	e.accum &= 1<<e.bits - 1
}

// unshift zero pads the trailing partial sextet and leaves the shift run.
// The explicit '-' is needed only when the next byte would otherwise be read
// as part of the run.
func (e *Encoder) unshift(dash bool) {
	if e.bits > 0 {
		e.put(alphabet[e.accum<<(6-e.bits)&0x3f])
	}
	if dash {
		e.put('-')
	}
	e.accum, e.bits, e.shifted = 0, 0, false
}

func (e *Encoder) put(b byte) {
	e.queue[e.n] = b
	e.n++
}

// drain moves queued bytes into the cursor and reports whether the queue emptied.
func (e *Encoder) drain(c *Cursor) bool {
	e.off += c.Put(e.queue[e.off:e.n])
	if e.off < e.n {
		return false
	}
	e.off, e.n = 0, 0
	return true
}
