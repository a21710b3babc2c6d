package utf7

import (
	"context"
	"fmt"
	"time"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// ContentType is the MIME type of UTF-7 text.
const ContentType = "text/plain; charset=UTF-7"

// chunkSize is the scratch region used by the whole-buffer helpers.
const chunkSize = 512

// utf7Codec implements Codec for UTF-7 text.
type utf7Codec struct {
	opts []Option
}

// New returns a UTF-7 codec. Options apply to every encoder it creates.
//
// Marshal accepts a string, a []byte holding UTF-8, or a []rune. Unmarshal fills
// a *string, a *[]byte (as UTF-8) or a *[]rune.
func New(opts ...Option) Codec {
	return &utf7Codec{opts: opts}
}

// ContentType returns the MIME type for UTF-7.
func (c *utf7Codec) ContentType() string {
	return ContentType
}

// Marshal encodes v as UTF-7.
func (c *utf7Codec) Marshal(v any) ([]byte, error) {
	start := time.Now()
	runes, err := toRunes(v)
	if err != nil {
		err = newCodecError(ErrMarshal, err)
		emitMarshalComplete(context.Background(), ContentType, 0, 0, time.Since(start), err)
		return nil, err
	}
	out := AppendEncode(nil, NewEncoder(c.opts...), runes)
	emitMarshalComplete(context.Background(), ContentType, len(out), len(runes), time.Since(start), nil)
	return out, nil
}

// Unmarshal decodes UTF-7 data into v.
func (c *utf7Codec) Unmarshal(data []byte, v any) error {
	start := time.Now()
	runes, err := DecodeAll(NewDecoder(), data)
	if err == nil {
		err = fromRunes(runes, v)
	}
	if err != nil {
		err = newCodecError(ErrUnmarshal, err)
	}
	emitUnmarshalComplete(context.Background(), ContentType, len(data), len(runes), time.Since(start), err)
	return err
}

// AppendEncode encodes runes followed by a flush and appends the result to dst.
func AppendEncode(dst []byte, enc RuneEncoder, runes []rune) []byte {
	var chunk [chunkSize]byte
	cur := NewCursor(chunk[:])
	for _, r := range runes {
		for enc.Encode(cur, r) == StatusFull {
			dst = append(dst, cur.Bytes()...)
			cur.Reset(chunk[:])
		}
	}
	for enc.Flush(cur) == StatusFull {
		dst = append(dst, cur.Bytes()...)
		cur.Reset(chunk[:])
	}
	return append(dst, cur.Bytes()...)
}

// DecodeAll decodes a complete stream. Malformed or truncated input yields a
// DecodeError carrying the offset and line of the failure.
func DecodeAll(dec RuneDecoder, data []byte) ([]rune, error) {
	var runes []rune
	cur := NewCursor(data)
	line := 1
	for {
		res := dec.Decode(cur)
		switch res.Status {
		case StatusRune:
			if res.Rune == '\n' {
				line++
			}
			runes = append(runes, res.Rune)
		case StatusOK:
			return runes, nil
		default:
			return runes, StatusError(res.Status, int64(cur.Pos()), line)
		}
	}
}

func toRunes(v any) ([]rune, error) {
	switch s := v.(type) {
	case string:
		if !utf8.ValidString(s) {
			return nil, encoding.ErrInvalidUTF8
		}
		return []rune(s), nil
	case []byte:
		if !utf8.Valid(s) {
			return nil, encoding.ErrInvalidUTF8
		}
		return []rune(string(s)), nil
	case []rune:
		for _, r := range s {
			if r < 0 || r > unicode.MaxRune || utf16.IsSurrogate(r) {
				return nil, fmt.Errorf("rune %#x is not a Unicode scalar value", r)
			}
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func fromRunes(runes []rune, v any) error {
	switch p := v.(type) {
	case *string:
		*p = string(runes)
	case *[]byte:
		*p = []byte(string(runes))
	case *[]rune:
		*p = runes
	default:
		return fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
	return nil
}
