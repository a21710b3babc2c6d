package utf7

// Cursor is a position within a caller-owned chunk of bytes.
//
// Encoders write at the position, decoders read from it. The caller owns the
// underlying slice: it drains or refills the chunk whenever a codec reports that
// the cursor is exhausted, then calls Reset to hand the codec a fresh region.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Reset repositions the cursor at the start of buf.
func (c *Cursor) Reset(buf []byte) {
	c.buf = buf
	c.pos = 0
}

// Len returns the number of bytes between the position and the end of the chunk.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

// Pos returns the number of bytes processed since the last Reset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Bytes returns the processed prefix of the chunk: the bytes written by an
// encoder or consumed by a decoder since the last Reset.
func (c *Cursor) Bytes() []byte {
	return c.buf[:c.pos]
}

// Remaining returns the unprocessed tail of the chunk.
func (c *Cursor) Remaining() []byte {
	return c.buf[c.pos:]
}

// Advance moves the position forward by n bytes.
// It panics if n is negative or exceeds Len.
func (c *Cursor) Advance(n int) {
	if n < 0 || n > c.Len() {
		panic("utf7: cursor advanced out of range")
	}
	c.pos += n
}

// Put copies as much of p as fits into the remaining chunk and advances past it.
// It returns the number of bytes copied.
func (c *Cursor) Put(p []byte) int {
	n := copy(c.buf[c.pos:], p)
	c.pos += n
	return n
}
