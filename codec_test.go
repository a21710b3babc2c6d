package utf7

import (
	"errors"
	"slices"
	"testing"

	"golang.org/x/text/encoding"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "text/plain; charset=UTF-7" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "text/plain; charset=UTF-7")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New(WithIndirect("="))

	data, err := c.Marshal("1 + 2 = 3;")
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "1 +- 2 +AD0 3;" {
		t.Errorf("Marshal() = %q, want %q", data, "1 +- 2 +AD0 3;")
	}

	var restored string
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != "1 + 2 = 3;" {
		t.Errorf("round-trip failed: got %q", restored)
	}
}

func TestMarshalTypes(t *testing.T) {
	c := New()
	want := "+A8DYPdyp-"
	for _, v := range []any{"π\U0001f4a9", []byte("π\U0001f4a9"), []rune{0x3c0, 0x1f4a9}} {
		data, err := c.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%T) error: %v", v, err)
		}
		if string(data) != want {
			t.Errorf("Marshal(%T) = %q, want %q", v, data, want)
		}
	}
}

func TestUnmarshalTypes(t *testing.T) {
	c := New()
	data := []byte("Hi +AKM-1")

	var s string
	var b []byte
	var r []rune
	for _, v := range []any{&s, &b, &r} {
		if err := c.Unmarshal(data, v); err != nil {
			t.Fatalf("Unmarshal(%T) error: %v", v, err)
		}
	}
	if s != "Hi £1" || string(b) != s || !slices.Equal(r, []rune(s)) {
		t.Errorf("Unmarshal() = %q, %q, %q", s, b, string(r))
	}
}

func TestMarshalLongInput(t *testing.T) {
	c := New()
	in := make([]rune, 5000)
	for i := range in {
		in[i] = rune(0x4e00 + i)
	}
	data, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var out []rune
	if err := c.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !slices.Equal(in, out) {
		t.Error("round-trip of long input failed")
	}
}

func TestMarshalErrors(t *testing.T) {
	c := New()
	tests := []struct {
		name  string
		v     any
		cause error
	}{
		{"invalid utf-8 string", "a\xffb", encoding.ErrInvalidUTF8},
		{"invalid utf-8 bytes", []byte{0xc3}, encoding.ErrInvalidUTF8},
		{"unsupported type", 42, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Marshal(tt.v)
			if !errors.Is(err, ErrMarshal) {
				t.Errorf("Marshal() error = %v, want ErrMarshal", err)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("Marshal() error = %v, want cause %v", err, tt.cause)
			}
		})
	}

	if _, err := c.Marshal([]rune{0xd800}); !errors.Is(err, ErrMarshal) {
		t.Errorf("Marshal(surrogate) error = %v, want ErrMarshal", err)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	c := New()
	tests := []struct {
		name  string
		data  string
		v     any
		cause error
		line  int
	}{
		{"invalid", "ok\n+2D0-", new(string), ErrInvalid, 2},
		{"truncated", "+AGE", new(string), ErrTruncated, 1},
		{"unsupported target", "abc", new(int), ErrUnsupported, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Unmarshal([]byte(tt.data), tt.v)
			if !errors.Is(err, ErrUnmarshal) || !errors.Is(err, tt.cause) {
				t.Fatalf("Unmarshal() error = %v, want %v", err, tt.cause)
			}
			var derr *DecodeError
			if errors.As(err, &derr) && derr.Line != tt.line {
				t.Errorf("DecodeError.Line = %d, want %d", derr.Line, tt.line)
			}
		})
	}
}
