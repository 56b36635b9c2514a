package mdhtml

import (
	"strings"
	"testing"
)

// render runs fn twice, measuring then writing into an exactly-sized
// buffer, and checks the two passes agree on produced length and cursor
// movement.
func render(t *testing.T, md string, fn func(*Sink, *Cursor) int) (string, int) {
	t.Helper()

	mcur := NewCursor([]byte(md))
	n := fn(Measure(), mcur)

	wcur := NewCursor([]byte(md))
	s := NewSink(make([]byte, n+1))
	got := fn(s, wcur)

	if got != n {
		t.Fatalf("write pass produced %d, measure pass produced %d", got, n)
	}
	if s.Len() != n {
		t.Fatalf("sink stored %d bytes, expected %d", s.Len(), n)
	}
	if wcur.Pos() != mcur.Pos() {
		t.Fatalf("write pass ended at %d, measure pass at %d", wcur.Pos(), mcur.Pos())
	}
	return s.String(), wcur.Pos()
}

func TestSink_Measure(t *testing.T) {
	s := Measure()
	if !s.Measuring() {
		t.Error("Measure() sink should be measuring")
	}
	if n := s.str("hello"); n != 5 {
		t.Errorf("str() = %d, want 5", n)
	}
	if s.Len() != 0 {
		t.Errorf("measuring sink stored %d bytes, want 0", s.Len())
	}
	if s.Bytes() != nil {
		t.Error("measuring sink should return nil bytes")
	}
}

func TestSink_Write(t *testing.T) {
	s := NewSink(make([]byte, 6))
	n := s.str("hello")
	if n != 5 {
		t.Errorf("str() = %d, want 5", n)
	}
	if s.String() != "hello" {
		t.Errorf("String() = %q, want %q", s.String(), "hello")
	}
}

func TestSink_Bounded(t *testing.T) {
	// the final buffer byte is reserved; overflow is counted, not stored
	s := NewSink(make([]byte, 4))
	n := s.str("hello world")
	if n != 11 {
		t.Errorf("str() = %d, want 11", n)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.String() != "hel" {
		t.Errorf("String() = %q, want %q", s.String(), "hel")
	}
}

func TestSink_Escapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no escapes", "plain text", "plain text"},
		{"collapse bang", `a\!b`, "a!b"},
		{"collapse bracket", `a\]b`, "a]b"},
		{"collapse tilde", `c\~`, "c~"},
		{"collapse backslash", `a\\b`, `a\b`},
		{"space not escapable", `a\ b`, `a\ b`},
		{"trailing backslash dropped", `abc\`, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSink(make([]byte, 64))
			n := s.md([]byte(tt.in))
			if s.String() != tt.want {
				t.Errorf("md(%q) = %q, want %q", tt.in, s.String(), tt.want)
			}
			if n != len(tt.want) {
				t.Errorf("md(%q) produced %d, want %d", tt.in, n, len(tt.want))
			}
		})
	}
}

func TestSink_MeasureMatchesWrite(t *testing.T) {
	// a truncated write still reports the full produced length, so a
	// measuring pass and any bounded write always agree
	const md = "# Title\n\nSome *emphasis* and `code`.\n"
	cv := New(Options{})

	n := cv.Content(Measure(), NewCursor([]byte(md)), len(md))
	if n == 0 {
		t.Fatal("expected non-empty output")
	}

	for _, size := range []int{1, 2, n / 2, n, n + 1} {
		s := NewSink(make([]byte, size))
		got := cv.Content(s, NewCursor([]byte(md)), len(md))
		if got != n {
			t.Errorf("buffer size %d: produced %d, want %d", size, got, n)
		}
		if s.Len() > size-1 {
			t.Errorf("buffer size %d: stored %d bytes past the reserve", size, s.Len())
		}
	}

	// full-size write matches the measured prefix at every truncation
	full := NewSink(make([]byte, n+1))
	cv.Content(full, NewCursor([]byte(md)), len(md))
	half := NewSink(make([]byte, n/2))
	cv.Content(half, NewCursor([]byte(md)), len(md))
	if !strings.HasPrefix(full.String(), half.String()) {
		t.Errorf("truncated output %q is not a prefix of %q", half.String(), full.String())
	}
}
