// Package utf7 implements UTF-7 (RFC 2152) as resumable state machines.
//
// The Encoder and Decoder never perform I/O and never allocate per call. The
// caller owns the byte regions they work on, described by a Cursor, and may
// hand them regions of any size down to a single byte. A call that runs out of
// room or input reports it through a Status and is resumed with a fresh region.
//
// # Encoding
//
// Characters of the direct set are written literally. Optional direct
// characters are literal too unless they were marked indirect:
//
//	enc := utf7.NewEncoder(utf7.WithIndirect("="))
//	cur := utf7.NewCursor(buf)
//	for _, r := range "1 + 2 = 3;" {
//	    for enc.Encode(cur, r) == utf7.StatusFull {
//	        w.Write(cur.Bytes())
//	        cur.Reset(buf)
//	    }
//	}
//	for enc.Flush(cur) == utf7.StatusFull {
//	    w.Write(cur.Bytes())
//	    cur.Reset(buf)
//	}
//	w.Write(cur.Bytes()) // 1 +- 2 +AD0 3;
//
// Everything else is packed as UTF-16 into a shift run of modified base64
// that starts with '+'. A run closes with '-' only when the next byte could
// be mistaken for base64 and at the end of the stream.
//
// # Decoding
//
// Decode returns one rune per StatusRune. StatusOK means the region was
// consumed on a clean boundary; StatusIncomplete means the region ended inside
// a shift run and more input is needed. StatusInvalid is final:
//
//	dec := utf7.NewDecoder()
//	cur := utf7.NewCursor(data)
//	for {
//	    res := dec.Decode(cur)
//	    if res.Status != utf7.StatusRune {
//	        break
//	    }
//	    fmt.Printf("%c", res.Rune)
//	}
//
// # Whole Buffers
//
// New returns a Codec that marshals strings, UTF-8 bytes and rune slices in
// one call, and Encoding adapts the state machines to golang.org/x/text so
// they compose with transform.Reader and transform.Writer.
//
// # Related Packages
//
//   - utf8 - a UTF-8 peer of the Encoder and Decoder with the same contract
//   - convert - a stream driver pairing any decoder with any encoder
//   - cmd/conv7 - a command line converter built on convert
package utf7

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec.
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// RuneEncoder is a resumable encoder from runes to bytes.
//
// Implementations are not safe for concurrent use.
type RuneEncoder interface {
	// Encode writes the encoding of r at the cursor. It returns StatusFull,
	// without accepting r, when the cursor has no room for pending output.
	Encode(c *Cursor, r rune) Status

	// Flush writes any buffered output and closes open state. It returns
	// StatusFull until everything reached a cursor.
	Flush(c *Cursor) Status
}

// RuneDecoder is a resumable decoder from bytes to runes.
//
// Implementations are not safe for concurrent use.
type RuneDecoder interface {
	// Decode consumes bytes from the cursor until a rune is produced, the
	// cursor is exhausted, or the input is found to be malformed.
	Decode(c *Cursor) Result
}
