package mdhtml

import "testing"

func TestLinePrimitives(t *testing.T) {
	src := []byte("one\ntwo\r\n  \nlast")

	if got := lineEnd(src, 0); got != 3 {
		t.Errorf("lineEnd = %d, want 3", got)
	}
	if got := lineEnd(src, 4); got != 7 {
		t.Errorf("lineEnd of crlf line = %d, want 7", got)
	}
	if got := lineNext(src, 0); got != 4 {
		t.Errorf("lineNext = %d, want 4", got)
	}
	if got := lineNext(src, 4); got != 9 {
		t.Errorf("lineNext past crlf = %d, want 9", got)
	}
	if got := lineBeg(src, 6); got != 4 {
		t.Errorf("lineBeg = %d, want 4", got)
	}
	if !lineIsBlank(src, 9) {
		t.Error("whitespace-only line should be blank")
	}
	if lineIsBlank(src, 12) {
		t.Error("last line should not be blank")
	}
	if got := lineSkipBlank(src, 9); got != 12 {
		t.Errorf("lineSkipBlank = %d, want 12", got)
	}
}

func TestLineIndent(t *testing.T) {
	tests := []struct {
		line    string
		tabSize int
		want    int
	}{
		{"none", 8, 0},
		{"  two", 8, 2},
		{"\tone tab", 8, 8},
		{"\tone tab", 1, 1},
		{" \tmixed", 4, 5},
	}
	for _, tt := range tests {
		if got := lineIndent([]byte(tt.line), 0, tt.tabSize); got != tt.want {
			t.Errorf("lineIndent(%q, %d) = %d, want %d", tt.line, tt.tabSize, got, tt.want)
		}
	}
}

func TestNpBrk(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		accept string
		want   int
	}{
		{"finds marker", "a*b", "*", 1},
		{"skips escaped", `a\*b*c`, "*", 4},
		{"skips code span", "a `*` b *", "*", 8},
		{"backtick accepted disables span skip", "a `x` b", "`", 2},
		{"not found", "plain", "*", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := npBrk([]byte(tt.src), 0, len(tt.src), tt.accept); got != tt.want {
				t.Errorf("npBrk(%q, %q) = %d, want %d", tt.src, tt.accept, got, tt.want)
			}
		})
	}
}

func TestMdLineChr(t *testing.T) {
	if got := mdLineChr([]byte("a|b"), 0, '|'); got != 1 {
		t.Errorf("mdLineChr = %d, want 1", got)
	}
	if got := mdLineChr([]byte(`a\|b`), 0, '|'); got != -1 {
		t.Errorf("mdLineChr on escaped pipe = %d, want -1", got)
	}
	if got := mdLineChr([]byte("ab\n|"), 0, '|'); got != -1 {
		t.Errorf("mdLineChr past line end = %d, want -1", got)
	}
}

func TestEscEndQuoted(t *testing.T) {
	src := []byte(`"with \" escape" rest`)
	if got := escEndQuoted(src, 0); got != 15 {
		t.Errorf("escEndQuoted = %d, want 15", got)
	}
}
