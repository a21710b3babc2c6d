package utf7

// Character classes, indexed by ASCII byte value.
const (
	classEscaped  uint8 = iota // always base64 encoded
	classDirect                // RFC 2152 Set D, always literal
	classOptional              // Set O and whitespace, literal unless configured indirect
)

// alphabet is the modified base64 alphabet used inside shift runs.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const (
	directChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789'(),-./:?"
	optionalChars = "!\"#$%&*;<=>@[]^_`{|} \t\r\n"
)

var classes = func() (t [128]uint8) {
	for i := 0; i < len(directChars); i++ {
		t[directChars[i]] = classDirect
	}
	for i := 0; i < len(optionalChars); i++ {
		t[optionalChars[i]] = classOptional
	}
	return t
}()

// sextets maps a byte to its 6-bit base64 value, or -1 for bytes outside the alphabet.
var sextets = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	return t
}()

// IsDirect reports whether b belongs to the mandatory direct set.
// Such characters are always written literally.
func IsDirect(b byte) bool {
	return b < 0x80 && classes[b] == classDirect
}

// IsOptional reports whether b is an optional direct character.
// These are written literally unless the encoder was configured to escape them.
func IsOptional(b byte) bool {
	return b < 0x80 && classes[b] == classOptional
}

// IsBase64 reports whether b belongs to the modified base64 alphabet.
func IsBase64(b byte) bool {
	return sextets[b] >= 0
}
