package demangle

import (
	"errors"
	"math"
	"testing"
)

func TestReadNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int32
		rest  string
	}{
		{"0", 1, ""},
		{"9", 10, ""},
		{"2H", 3, "H"},
		{"?2", -3, ""},
		{"A@", 0, ""},
		{"B@", 1, ""},
		{"P@", 15, ""},
		{"BA@", 16, ""},
		{"NKM@H", 3500, "H"},
		{"?BA@", -16, ""},
		{"HPPPPPPP@", math.MaxInt32, ""},
	}
	for _, tt := range tests {
		p := &parser{cur: cursor{rest: tt.input}}
		got, err := p.readNumber()
		if err != nil {
			t.Errorf("readNumber(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("readNumber(%q) = %d, want %d", tt.input, got, tt.want)
		}
		if p.cur.rest != tt.rest {
			t.Errorf("readNumber(%q) left %q, want %q", tt.input, p.cur.rest, tt.rest)
		}
	}
}

func TestReadNumberErrors(t *testing.T) {
	// The last two would exceed 31 bits and must be rejected, not wrapped.
	for _, input := range []string{"", "?", "Z@", "AB", "Aa@", "PPPPPPPP@", "BAAAAAAAA@"} {
		p := &parser{cur: cursor{rest: input}}
		if _, err := p.readNumber(); !errors.Is(err, ErrBadNumber) {
			t.Errorf("readNumber(%q) = %v, want ErrBadNumber", input, err)
		}
	}
}

func TestCursor(t *testing.T) {
	c := cursor{rest: "AB"}
	if c.empty() {
		t.Error("empty() = true on non-empty cursor")
	}
	if got := c.peek(); got != 'A' {
		t.Errorf("peek() = %q, want 'A'", got)
	}
	if c.consume("AC") {
		t.Error("consume matched a non-prefix")
	}
	if !c.consume("A") {
		t.Error("consume failed on a prefix")
	}
	b, err := c.get()
	if err != nil || b != 'B' {
		t.Errorf("get() = %q, %v, want 'B'", b, err)
	}
	if !c.empty() {
		t.Error("empty() = false after consuming all input")
	}
	if got := c.peek(); got != 0 {
		t.Errorf("peek() at end = %q, want 0", got)
	}
	if _, err := c.get(); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("get() at end = %v, want ErrUnexpectedEnd", err)
	}
}

func TestConsumeDigit(t *testing.T) {
	c := cursor{rest: "7x"}
	d, ok := c.consumeDigit()
	if !ok || d != 7 {
		t.Fatalf("consumeDigit() = %d, %v, want 7, true", d, ok)
	}
	if _, ok := c.consumeDigit(); ok {
		t.Error("consumeDigit matched a non-digit")
	}
	if c.rest != "x" {
		t.Errorf("rest = %q, want %q", c.rest, "x")
	}
}
