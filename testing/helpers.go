// Package testing provides test utilities for utf7.
package testing

import (
	"github.com/zoobzio/utf7"
)

// EncodeChunked encodes in followed by a flush, handing enc an output region of
// n bytes and draining it every time the encoder reports it full. It returns the
// concatenated output and the number of times the region was drained.
func EncodeChunked(enc utf7.RuneEncoder, in []rune, n int) ([]byte, int) {
	var out []byte
	fills := 0
	buf := make([]byte, n)
	cur := utf7.NewCursor(buf)
	drain := func() {
		out = append(out, cur.Bytes()...)
		cur.Reset(buf)
		fills++
	}
	for _, r := range in {
		for enc.Encode(cur, r) != utf7.StatusOK {
			drain()
		}
	}
	for enc.Flush(cur) != utf7.StatusOK {
		drain()
	}
	return append(out, cur.Bytes()...), fills
}

// DecodeChunked decodes in, feeding dec at most n bytes at a time. It returns
// the decoded runes, the number of refills and the final status: StatusOK for a
// clean end, StatusIncomplete for truncated input, StatusInvalid for malformed
// input.
func DecodeChunked(dec utf7.RuneDecoder, in []byte, n int) ([]rune, int, utf7.Status) {
	var out []rune
	fills := 0
	pos := 0
	next := func() []byte {
		end := min(pos+n, len(in))
		chunk := in[pos:end]
		pos = end
		return chunk
	}
	cur := utf7.NewCursor(next())
	for {
		res := dec.Decode(cur)
		switch res.Status {
		case utf7.StatusRune:
			out = append(out, res.Rune)
		case utf7.StatusOK, utf7.StatusIncomplete:
			if pos == len(in) {
				return out, fills, res.Status
			}
			cur.Reset(next())
			fills++
		default:
			return out, fills, res.Status
		}
	}
}

// Sample pairs a rune sequence with its UTF-7 encoding.
type Sample struct {
	Name     string
	Runes    []rune
	Indirect string
	UTF7     string
}

// Samples returns reference encodings covering shift runs, literal plus signs,
// indirect characters and surrogate pairs.
func Samples() []Sample {
	return []Sample{
		{Name: "plus and indirect", Runes: []rune("1 + 2 = 3;"), Indirect: "=", UTF7: "1 +- 2 +AD0 3;"},
		{Name: "pi then base64 literal", Runes: []rune("\u03c0r^2"), Indirect: "=", UTF7: "+A8A-r^2"},
		{Name: "plus inside run", Runes: []rune("~~+"), UTF7: "+AH4AfgAr-"},
		{Name: "dash after run", Runes: []rune("~-"), UTF7: "+AH4--"},
		{Name: "indirect tab", Runes: []rune("\\[\t]"), Indirect: "\t", UTF7: "+AFw[+AAk]"},
		{Name: "supplementary", Runes: []rune{0x1f4a9}, UTF7: "+2D3cqQ-"},
		{Name: "pi and supplementary", Runes: []rune{0x03c0, 0x1f4a9}, UTF7: "+A8DYPdyp-"},
		{Name: "plain ascii", Runes: []rune("Hi Mom -:)-"), UTF7: "Hi Mom -:)-"},
		{Name: "empty", Runes: nil, UTF7: ""},
	}
}
