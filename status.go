package utf7

// Status reports the outcome of a single encode or decode call.
type Status uint8

const (
	// StatusOK means the call completed. For decoders it means every available
	// byte was consumed on a clean boundary and no rune is pending.
	StatusOK Status = iota

	// StatusRune means a decoder produced a rune, carried in Result.Rune.
	StatusRune

	// StatusFull means the output region has no room. The rune passed to Encode
	// was not accepted; retry the identical call with a drained cursor.
	StatusFull

	// StatusIncomplete means the input region ran out inside a shift run or a
	// partial sequence. Supply more bytes and call again.
	StatusIncomplete

	// StatusInvalid means the input is malformed. The stream cannot be resumed.
	StatusInvalid
)

var statusNames = [...]string{
	StatusOK:         "ok",
	StatusRune:       "rune",
	StatusFull:       "full",
	StatusIncomplete: "incomplete",
	StatusInvalid:    "invalid",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Result is the tagged outcome of a decode call.
// Rune is meaningful only when Status is StatusRune.
type Result struct {
	Rune   rune
	Status Status
}

// RuneResult wraps a decoded rune.
func RuneResult(r rune) Result {
	return Result{Rune: r, Status: StatusRune}
}

// StatusResult wraps a status that carries no rune.
func StatusResult(s Status) Result {
	return Result{Status: s}
}
