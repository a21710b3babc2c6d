// Package convert drives a decoder and an encoder over byte streams.
//
// It owns the buffers the codecs work on: it refills the input chunk whenever
// the decoder runs dry and drains the output chunk whenever the encoder reports
// it full, so the state machines never perform I/O themselves.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/utf7"
)

// BOM is the byte order mark.
const BOM = '\uFEFF'

// DefaultBufferSize is the size of the input and output chunks.
const DefaultBufferSize = 4096

// BOMMode selects how a leading byte order mark is treated.
type BOMMode int

const (
	// BOMPass copies the input unchanged.
	BOMPass BOMMode = iota

	// BOMAdd writes a BOM and drops one already present at the start of input.
	BOMAdd

	// BOMRemove drops a BOM at the start of input.
	BOMRemove
)

func (m BOMMode) String() string {
	switch m {
	case BOMAdd:
		return "add"
	case BOMRemove:
		return "remove"
	}
	return "pass"
}

// ParseBOMMode parses "pass", "add" or "remove". The empty string is "pass".
func ParseBOMMode(s string) (BOMMode, error) {
	switch s {
	case "", "pass":
		return BOMPass, nil
	case "add":
		return BOMAdd, nil
	case "remove", "clear":
		return BOMRemove, nil
	}
	return BOMPass, fmt.Errorf("unknown BOM mode %q", s)
}

// Config selects the encodings and options of a conversion.
type Config struct {
	From       *Encoding
	To         *Encoding
	Indirect   string // indirect set for a UTF-7 encoder
	BOM        BOMMode
	BufferSize int // defaults to DefaultBufferSize
}

// Stats summarizes a conversion.
type Stats struct {
	BytesIn  int64 `json:"bytes_in" yaml:"bytes_in"`
	BytesOut int64 `json:"bytes_out" yaml:"bytes_out"`
	Runes    int64 `json:"runes" yaml:"runes"`
	Lines    int   `json:"lines" yaml:"lines"` // line number reached, starting at 1
}

// Convert reads r in the From encoding and writes it to w in the To encoding.
//
// Malformed input stops the conversion with a *utf7.DecodeError wrapping
// utf7.ErrInvalid; input that ends inside a shift run or a partial sequence
// fails with utf7.ErrTruncated. Cancellation of ctx is observed between chunks.
func Convert(ctx context.Context, w io.Writer, r io.Reader, cfg Config) (Stats, error) {
	if cfg.From == nil || cfg.To == nil {
		return Stats{}, fmt.Errorf("%w: source and target encodings are required", ErrUnknownEncoding)
	}
	size := cfg.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}

	logger := Logger(ctx).WithFields(logrus.Fields{
		"from": cfg.From.Name,
		"to":   cfg.To.Name,
	})
	logger.Debugf("converting with %d byte buffers, bom=%s", size, cfg.BOM)
	emitConvertStart(ctx, cfg.From.Name, cfg.To.Name)
	start := time.Now()

	c := &converter{
		w:    w,
		r:    r,
		dec:  cfg.From.NewDecoder(),
		enc:  cfg.To.NewEncoder(cfg.Indirect),
		bi:   make([]byte, size),
		bo:   make([]byte, size),
		line: 1,
	}
	c.in = utf7.NewCursor(c.bi[:0])
	c.out = utf7.NewCursor(c.bo)

	err := c.run(ctx, cfg.BOM)
	stats := c.stats()
	duration := time.Since(start)
	emitConvertComplete(ctx, cfg.From.Name, cfg.To.Name, stats, duration, err)
	if err != nil {
		logger.WithError(err).Debug("conversion failed")
		return stats, err
	}
	logger.Debugf("converted %d runes (%d bytes in, %d bytes out) in %s", stats.Runes, stats.BytesIn, stats.BytesOut, duration)
	return stats, nil
}

type converter struct {
	w   io.Writer
	r   io.Reader
	dec utf7.RuneDecoder
	enc utf7.RuneEncoder

	bi, bo  []byte
	in, out *utf7.Cursor

	line     int
	runes    int64
	bytesIn  int64
	bytesOut int64
}

func (c *converter) run(ctx context.Context, bom BOMMode) error {
	if bom == BOMAdd {
		if err := c.push(BOM); err != nil {
			return err
		}
		bom = BOMRemove
	}

	eof := false
	for {
		res := c.dec.Decode(c.in)
		switch res.Status {
		case utf7.StatusOK, utf7.StatusIncomplete:
			if err := ctx.Err(); err != nil {
				return err
			}
			if !eof {
				n, err := io.ReadAtLeast(c.r, c.bi, 1)
				c.bytesIn += int64(n)
				c.in.Reset(c.bi[:n])
				if err == nil {
					continue
				}
				if !errors.Is(err, io.EOF) {
					return fmt.Errorf("read: line %d: %w", c.line, err)
				}
				eof = true
				continue
			}
			if res.Status == utf7.StatusIncomplete {
				return utf7.StatusError(res.Status, c.offset(), c.line)
			}
			return c.finish()

		case utf7.StatusInvalid:
			return utf7.StatusError(res.Status, c.offset(), c.line)

		default:
			if bom == BOMRemove && res.Rune == BOM {
				bom = BOMPass
				continue
			}
			bom = BOMPass
			if res.Rune == '\n' {
				c.line++
			}
			c.runes++
			if err := c.push(res.Rune); err != nil {
				return err
			}
		}
	}
}

// push encodes r, draining the output chunk as often as the encoder needs.
func (c *converter) push(r rune) error {
	for c.enc.Encode(c.out, r) == utf7.StatusFull {
		if err := c.drain(); err != nil {
			return err
		}
	}
	return nil
}

func (c *converter) finish() error {
	for c.enc.Flush(c.out) == utf7.StatusFull {
		if err := c.drain(); err != nil {
			return err
		}
	}
	return c.drain()
}

func (c *converter) drain() error {
	if c.out.Pos() == 0 {
		return nil
	}
	n, err := c.w.Write(c.out.Bytes())
	c.bytesOut += int64(n)
	if err != nil {
		return fmt.Errorf("write: line %d: %w", c.line, err)
	}
	c.out.Reset(c.bo)
	return nil
}

// offset is the number of input bytes consumed so far.
func (c *converter) offset() int64 {
	return c.bytesIn - int64(c.in.Len())
}

func (c *converter) stats() Stats {
	return Stats{
		BytesIn:  c.bytesIn,
		BytesOut: c.bytesOut,
		Runes:    c.runes,
		Lines:    c.line,
	}
}
