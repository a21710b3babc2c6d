package utf7

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalid indicates malformed UTF-7: a byte with the high bit set,
	// non-zero padding bits, or an unpaired surrogate.
	ErrInvalid = errors.New("invalid input")

	// ErrTruncated indicates the input ended inside a shift run.
	ErrTruncated = errors.New("truncated input")

	// ErrUnsupported indicates a value of a type the codec cannot handle.
	ErrUnsupported = errors.New("unsupported type")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// DecodeError locates malformed or truncated input within a stream.
type DecodeError struct {
	Err    error // ErrInvalid or ErrTruncated
	Offset int64 // bytes consumed before the error
	Line   int   // 1-based line of the error, 0 if unknown
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d (offset %d)", e.Err.Error(), e.Line, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// StatusError converts a terminal decode status into a DecodeError.
// It returns nil for statuses that do not describe malformed input.
func StatusError(s Status, offset int64, line int) error {
	switch s {
	case StatusInvalid:
		return newDecodeError(ErrInvalid, offset, line)
	case StatusIncomplete:
		return newDecodeError(ErrTruncated, offset, line)
	}
	return nil
}

// newDecodeError creates a DecodeError for a position in the input.
func newDecodeError(sentinel error, offset int64, line int) error {
	return &DecodeError{
		Err:    sentinel,
		Offset: offset,
		Line:   line,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
