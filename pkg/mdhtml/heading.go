package mdhtml

// headingAt returns the heading level at line i and the offset of the line
// after the heading (two lines for the underlined form). Returns level 0
// and -1 when the line is not a heading: no flush-left hashes and no
// underline, seven or more hashes, or no heading text.
func headingAt(src []byte, i int) (level, after int) {
	after = lineNext(src, i)
	level = chrCount(src, i, '#')

	if lineIsBlank(src, i+level) {
		level = 0
	} else if level == 0 {
		// underlined form:
		//   Heading Text
		//   ============
		if after < len(src) && src[after] == '=' && lineIsBlank(src, after+chrCount(src, after, '=')) {
			level = 1
		}
		if after < len(src) && src[after] == '-' && lineIsBlank(src, after+chrCount(src, after, '-')) {
			level = 2
		}
		if level != 0 {
			after = lineNext(src, after)
		}
	}

	if level > 6 {
		level = 0
	}
	if level == 0 {
		return 0, -1
	}
	return level, after
}

// headingText returns the offset of the heading text on a heading line.
func headingText(src []byte, i int) int {
	if src[i] == '#' {
		return skipWhite(src, i+chrCount(src, i, '#'))
	}
	return i
}

// IsHeading reports whether the cursor is at a heading and returns its
// level, 1 through 6.
func (cv *Converter) IsHeading(cur *Cursor) (int, bool) {
	level, after := headingAt(cur.src, cur.pos)
	return level, after >= 0
}

// Heading converts the heading at the cursor into <h1>..<h6> with a slug id
// and, when the converter has a heading color, a class attribute. The
// heading text is copied verbatim.
func (cv *Converter) Heading(s *Sink, cur *Cursor) int {
	src := cur.src
	level, after := headingAt(src, cur.pos)
	if after < 0 {
		return 0
	}

	text := headingText(src, cur.pos)
	produced := s.str("<h")
	produced += s.put('0' + byte(level))
	produced += s.str(` id="`)
	produced += writeSlug(s, src[text:lineEnd(src, text)])
	if cv.opts.HeadingColor != "" {
		produced += s.str(`" class="`)
		produced += s.str(cv.opts.HeadingColor)
	}
	produced += s.str(`">`)
	produced += s.raw(src[text:lineEnd(src, text)])
	produced += s.str("</h")
	produced += s.put('0' + byte(level))
	produced += s.str(">\r\n")

	cur.pos = after
	return produced
}

// IsHorzRule reports whether the line at the cursor is a horizontal rule:
// three or more of the same byte from "*-_" with only whitespace after.
func (cv *Converter) IsHorzRule(cur *Cursor) bool {
	return isHorzRule(cur.src, cur.pos)
}

func isHorzRule(src []byte, i int) bool {
	if i >= len(src) || indexByteStr("*-_", src[i]) < 0 {
		return false
	}
	n := chrCount(src, i, src[i])
	return n >= 3 && lineIsBlank(src, i+n)
}

// HorzRule converts the horizontal rule at the cursor.
func (cv *Converter) HorzRule(s *Sink, cur *Cursor) int {
	if !isHorzRule(cur.src, cur.pos) {
		return 0
	}
	cur.pos = lineNext(cur.src, cur.pos)
	return s.str("<p><hr></p>\r\n")
}
