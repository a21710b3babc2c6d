package utf7

import (
	"errors"
	"testing"
)

func TestDecodeError_Is(t *testing.T) {
	err := newDecodeError(ErrInvalid, 12, 3)

	if !errors.Is(err, ErrInvalid) {
		t.Error("DecodeError should unwrap to ErrInvalid")
	}
	if errors.Is(err, ErrTruncated) {
		t.Error("DecodeError should not match ErrTruncated")
	}
}

func TestDecodeError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with line",
			err:  newDecodeError(ErrInvalid, 12, 3),
			want: "invalid input at line 3 (offset 12)",
		},
		{
			name: "offset only",
			err:  &DecodeError{Err: ErrTruncated, Offset: 4},
			want: "truncated input at offset 4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodecError_Is(t *testing.T) {
	err := newCodecError(ErrUnmarshal, newDecodeError(ErrInvalid, 0, 1))

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Error("CodecError should unwrap to its cause")
	}
	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}

	var derr *DecodeError
	if !errors.As(err, &derr) || derr.Line != 1 {
		t.Errorf("errors.As() DecodeError = %+v", derr)
	}
}

func TestCodecError_Message(t *testing.T) {
	if got, want := newCodecError(ErrMarshal, errors.New("boom")).Error(), "marshal failed: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := (&CodecError{Err: ErrMarshal}).Error(), "marshal failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestStatusError(t *testing.T) {
	if err := StatusError(StatusOK, 0, 1); err != nil {
		t.Errorf("StatusError(ok) = %v, want nil", err)
	}
	if err := StatusError(StatusRune, 0, 1); err != nil {
		t.Errorf("StatusError(rune) = %v, want nil", err)
	}
	if err := StatusError(StatusInvalid, 0, 1); !errors.Is(err, ErrInvalid) {
		t.Errorf("StatusError(invalid) = %v", err)
	}
	if err := StatusError(StatusIncomplete, 0, 1); !errors.Is(err, ErrTruncated) {
		t.Errorf("StatusError(incomplete) = %v", err)
	}
}
