package mdhtml

// A Cursor is a position within an immutable Markdown source. Handlers
// advance it past the Markdown they consume; a handler that does not match
// leaves it unmoved.
type Cursor struct {
	src []byte
	pos int
}

// NewCursor returns a cursor at the start of src.
func NewCursor(src []byte) *Cursor {
	return &Cursor{src: src}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Seek moves the cursor to the given byte offset, clamped to the source.
func (c *Cursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.src) {
		pos = len(c.src)
	}
	c.pos = pos
}

// EOF reports whether the cursor is at the end of the source.
func (c *Cursor) EOF() bool { return c.pos >= len(c.src) }

// Source returns the underlying source bytes.
func (c *Cursor) Source() []byte { return c.src }

// Rest returns the unconsumed remainder of the source.
func (c *Cursor) Rest() []byte { return c.src[c.pos:] }

// isBlankByte reports space or tab.
func isBlankByte(c byte) bool { return c == ' ' || c == '\t' }

// isEol reports carriage return or line feed.
func isEol(c byte) bool { return c == '\r' || c == '\n' }

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

func isAlnumByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// lineEnd returns the offset of the line terminator at or after i.
func lineEnd(src []byte, i int) int {
	for i < len(src) && !isEol(src[i]) {
		i++
	}
	return i
}

// lineLen returns the length of the line starting at i, excluding the
// terminator.
func lineLen(src []byte, i int) int {
	return lineEnd(src, i) - i
}

// lineNext returns the offset just past the next line feed, or end of source.
func lineNext(src []byte, i int) int {
	for i < len(src) {
		if src[i] == '\n' {
			return i + 1
		}
		i++
	}
	return i
}

// lineBeg returns the offset of the first byte of the line containing i.
func lineBeg(src []byte, i int) int {
	if i > len(src) {
		i = len(src)
	}
	for i > 0 && src[i-1] != '\n' {
		i--
	}
	return i
}

// linePrev returns the offset of the first byte of the line before the one
// containing i.
func linePrev(src []byte, i int) int {
	i = lineBeg(src, i)
	if i > 0 {
		i = lineBeg(src, i-1)
	}
	return i
}

// lineIsBlank reports whether only whitespace remains between i and the end
// of line.
func lineIsBlank(src []byte, i int) bool {
	i = skipWhite(src, i)
	return i >= len(src) || isEol(src[i])
}

// lineSkipBlank skips consecutive blank lines starting at i.
func lineSkipBlank(src []byte, i int) int {
	for i < len(src) && lineIsBlank(src, i) {
		i = lineNext(src, i)
	}
	return i
}

// skipWhite skips spaces and tabs.
func skipWhite(src []byte, i int) int {
	for i < len(src) && isBlankByte(src[i]) {
		i++
	}
	return i
}

// skipChars skips bytes contained in set.
func skipChars(src []byte, i int, set string) int {
	for i < len(src) && indexByteStr(set, src[i]) >= 0 {
		i++
	}
	return i
}

// chrCount counts consecutive occurrences of c at i.
func chrCount(src []byte, i int, c byte) int {
	count := 0
	for i < len(src) && src[i] == c {
		count++
		i++
	}
	return count
}

// chrCountRev counts consecutive occurrences of c immediately before end,
// not looking before start.
func chrCountRev(src []byte, start, end int, c byte) int {
	count := 0
	for end > start {
		end--
		if src[end] != c {
			break
		}
		count++
	}
	return count
}

// lineIndent returns the indent of the line at i in columns, counting each
// tab as tabSize.
func lineIndent(src []byte, i int, tabSize int) int {
	indent := 0
	for i < len(src) && isBlankByte(src[i]) {
		if src[i] == '\t' {
			indent += tabSize
		} else {
			indent++
		}
		i++
	}
	return indent
}

// lineChr finds c within the line at i, ignoring escapes. Returns -1 if the
// line does not contain it.
func lineChr(src []byte, i int, c byte) int {
	for i < len(src) && !isEol(src[i]) {
		if src[i] == c {
			return i
		}
		i++
	}
	return -1
}

// indexByteStr is strchr over a string of distinct bytes.
func indexByteStr(set string, c byte) int {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return i
		}
	}
	return -1
}
