package utf7

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Encoding returns a golang.org/x/text encoding for UTF-7.
//
// Its decoder transforms UTF-7 into UTF-8 and its encoder transforms UTF-8 into
// UTF-7, both driving the resumable state machines of this package, so they can
// be used with transform.NewReader, transform.NewWriter and transform.String.
// The decoder fails with ErrInvalid on malformed input and ErrTruncated when the
// input ends inside a shift run. The encoder fails with encoding.ErrInvalidUTF8.
func Encoding(opts ...Option) encoding.Encoding {
	return &xEncoding{opts: opts}
}

type xEncoding struct {
	opts []Option
}

func (e *xEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decodeTransformer{dec: NewDecoder()}}
}

func (e *xEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encodeTransformer{enc: NewEncoder(e.opts...)}}
}

func (e *xEncoding) String() string {
	return "UTF-7"
}

// decodeTransformer converts UTF-7 to UTF-8.
type decodeTransformer struct {
	dec *Decoder

	// UTF-8 bytes of a decoded rune that did not fit in dst.
	pending [utf8.UTFMax]byte
	off, n  int
}

func (t *decodeTransformer) Reset() {
	t.dec.Reset()
	t.off, t.n = 0, 0
}

func (t *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if t.off < t.n {
		k := copy(dst, t.pending[t.off:t.n])
		t.off += k
		nDst += k
		if t.off < t.n {
			return nDst, 0, transform.ErrShortDst
		}
		t.off, t.n = 0, 0
	}

	var cur Cursor
	cur.Reset(src)
	for {
		res := t.dec.Decode(&cur)
		switch res.Status {
		case StatusRune:
			if utf8.RuneLen(res.Rune) <= len(dst)-nDst {
				nDst += utf8.EncodeRune(dst[nDst:], res.Rune)
				continue
			}
			// The rune's bytes were already consumed from src, so park its
			// encoding until the caller provides more room.
			t.n = utf8.EncodeRune(t.pending[:], res.Rune)
			t.off = copy(dst[nDst:], t.pending[:t.n])
			nDst += t.off
			return nDst, cur.Pos(), transform.ErrShortDst
		case StatusInvalid:
			return nDst, cur.Pos(), ErrInvalid
		case StatusIncomplete:
			if atEOF {
				return nDst, cur.Pos(), ErrTruncated
			}
			return nDst, cur.Pos(), nil
		default:
			return nDst, cur.Pos(), nil
		}
	}
}

// encodeTransformer converts UTF-8 to UTF-7.
type encodeTransformer struct {
	enc *Encoder
}

func (t *encodeTransformer) Reset() {
	t.enc.Reset()
}

func (t *encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var cur Cursor
	cur.Reset(dst)
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[nSrc:])
			if size == 1 {
				if !atEOF && !utf8.FullRune(src[nSrc:]) {
					return cur.Pos(), nSrc, transform.ErrShortSrc
				}
				return cur.Pos(), nSrc, encoding.ErrInvalidUTF8
			}
		}
		if t.enc.Encode(&cur, r) == StatusFull {
			return cur.Pos(), nSrc, transform.ErrShortDst
		}
		nSrc += size
	}
	if atEOF && t.enc.Flush(&cur) == StatusFull {
		return cur.Pos(), nSrc, transform.ErrShortDst
	}
	return cur.Pos(), nSrc, nil
}
