package utf7

import "unicode/utf16"

const (
	surrHigh = 0xd800
	surrLow  = 0xdc00
	surrEnd  = 0xe000
)

// Decoder is a resumable UTF-7 decoder.
//
// Decode may be called with consecutive chunks of a stream split at any byte;
// state carried between calls covers a partial sextet group, an open shift run
// and a high surrogate waiting for its pair.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	accum   uint32 // unconsumed bits, right aligned
	bits    uint   // number of valid bits in accum, always < 16 between calls
	shifted bool
	empty   bool // shift run opened but no base64 consumed yet
	high    rune // pending high surrogate, 0 if none
}

// NewDecoder returns a decoder positioned outside any shift run.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Shifted reports whether the decoder is inside a shift run.
func (d *Decoder) Shifted() bool {
	return d.shifted
}

// Reset discards all state.
func (d *Decoder) Reset() {
	*d = Decoder{}
}

// Decode consumes bytes from the cursor until it can return a rune.
//
// When the cursor runs out it returns StatusIncomplete if a shift run is still
// open, StatusOK otherwise. StatusInvalid leaves the cursor at the offending
// byte; the stream is malformed and must not be resumed.
func (d *Decoder) Decode(c *Cursor) Result {
	for c.pos < len(c.buf) {
		b := c.buf[c.pos]

		if !d.shifted {
			switch {
			case b >= 0x80:
				return StatusResult(StatusInvalid)
			case b == '+':
				c.pos++
				d.shifted, d.empty = true, true
				continue
			default:
				c.pos++
				return RuneResult(rune(b))
			}
		}

		v := sextets[b]
		if v < 0 {
			if d.empty {
				// "+-" is a literal plus; '+' followed by anything else is ill-formed.
				if b != '-' {
					return StatusResult(StatusInvalid)
				}
				c.pos++
				d.shifted, d.empty = false, false
				return RuneResult('+')
			}
			if d.high != 0 || d.bits >= 6 || d.accum != 0 {
				return StatusResult(StatusInvalid)
			}
			d.shifted = false
			d.bits = 0
			if b == '-' {
				c.pos++
			}
			continue
		}

		accum := d.accum<<6 | uint32(v)
		bits := d.bits + 6
		if bits < 16 {
			d.accum, d.bits, d.empty = accum, bits, false
			c.pos++
			continue
		}
		bits -= 16
		unit := rune(accum >> bits & 0xffff)
		accum &= 1<<bits - 1

		switch {
		case unit >= surrHigh && unit < surrLow:
			if d.high != 0 {
				return StatusResult(StatusInvalid)
			}
			d.high = unit
			d.accum, d.bits, d.empty = accum, bits, false
			c.pos++
		case unit >= surrLow && unit < surrEnd:
			if d.high == 0 {
				return StatusResult(StatusInvalid)
			}
			r := utf16.DecodeRune(d.high, unit)
			d.high = 0
			d.accum, d.bits, d.empty = accum, bits, false
			c.pos++
			return RuneResult(r)
		default:
			if d.high != 0 {
				return StatusResult(StatusInvalid)
			}
			d.accum, d.bits, d.empty = accum, bits, false
			c.pos++
			return RuneResult(unit)
		}
	}
	if d.shifted {
		return StatusResult(StatusIncomplete)
	}
	return StatusResult(StatusOK)
}
