package utf7

import "testing"

func TestCursor(t *testing.T) {
	buf := make([]byte, 4)
	c := NewCursor(buf)

	if c.Len() != 4 || c.Pos() != 0 {
		t.Fatalf("new cursor Len() = %d, Pos() = %d", c.Len(), c.Pos())
	}
	if n := c.Put([]byte("abc")); n != 3 {
		t.Errorf("Put() = %d, want 3", n)
	}
	if n := c.Put([]byte("def")); n != 1 {
		t.Errorf("Put() = %d, want 1", n)
	}
	if string(c.Bytes()) != "abcd" {
		t.Errorf("Bytes() = %q, want %q", c.Bytes(), "abcd")
	}
	if c.Len() != 0 || len(c.Remaining()) != 0 {
		t.Errorf("full cursor Len() = %d", c.Len())
	}

	c.Reset([]byte("xyz"))
	c.Advance(2)
	if string(c.Remaining()) != "z" || c.Pos() != 2 {
		t.Errorf("Remaining() = %q, Pos() = %d", c.Remaining(), c.Pos())
	}
}

func TestCursor_AdvancePastEnd(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Advance past end did not panic")
		}
	}()
	NewCursor([]byte("a")).Advance(2)
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusOK:         "ok",
		StatusRune:       "rune",
		StatusFull:       "full",
		StatusIncomplete: "incomplete",
		StatusInvalid:    "invalid",
		Status(42):       "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", s, got, want)
		}
	}
}
