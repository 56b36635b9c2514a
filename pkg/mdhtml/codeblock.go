package mdhtml

const tripleTicks = "```"

// IsCodeBlock reports whether the line at the cursor opens a code block,
// and whether it is the fenced kind. A fence is three backticks after
// optional whitespace; otherwise an indent of four or more columns starts
// an indented block.
func (cv *Converter) IsCodeBlock(cur *Cursor) (isBlock, fenced bool) {
	return cv.isCodeBlock(cur.src, cur.pos)
}

func (cv *Converter) isCodeBlock(src []byte, i int) (isBlock, fenced bool) {
	j := skipWhite(src, i)
	if j+len(tripleTicks) <= len(src) && string(src[j:j+len(tripleTicks)]) == tripleTicks {
		return true, true
	}
	if lineIndent(src, i, cv.opts.TabWidth) >= 4 {
		return true, false
	}
	return false, false
}

// CodeBlockEnd returns the offset of the line after the code block at i.
func (cv *Converter) CodeBlockEnd(cur *Cursor) int {
	src, i := cur.src, cur.pos
	isBlock, fenced := cv.isCodeBlock(src, i)
	if !isBlock {
		return i
	}
	if fenced {
		at := indexStr(src, skipWhite(src, i)+len(tripleTicks), tripleTicks)
		if at < 0 {
			return len(src)
		}
		return lineNext(src, at)
	}
	for i < len(src) && (lineIsBlank(src, i) || lineIndent(src, i, cv.opts.TabWidth) >= 4) {
		i = lineNext(src, i)
	}
	return i
}

// CodeLine converts one line of code block content and advances to the next
// line.
func (cv *Converter) CodeLine(s *Sink, cur *Cursor) int {
	end := lineEnd(cur.src, cur.pos)
	produced := codeLineSegment(s, cur.src, cur.pos, end)
	cur.pos = lineNext(cur.src, end)
	return produced
}

// codeLineSegment converts the code bytes in [i, end): '<' becomes &lt; and
// space runs alternate "&nbsp;" and " " so HTML preserves them, with a
// single leading space forced to "&nbsp;". Every line ends "<br>\r\n".
func codeLineSegment(s *Sink, src []byte, i, end int) int {
	produced := 0

	if !lineIsBlank(src, i) {
		seg := i
		text := i
		for i < len(src) && i < end {
			if src[i] != ' ' && src[i] != '<' {
				i++
				continue
			}
			produced += s.raw(src[text:i])
			if src[i] == ' ' {
				// a single space at the segment start would be swallowed by
				// HTML, so force it non-breaking
				n := chrCount(src, i, ' ')
				if i == seg && n == 1 {
					produced += s.str("&nbsp;")
				} else {
					produced += catSpaces(s, n)
				}
				i += n
			} else {
				produced += s.str("&lt;")
				i++
			}
			text = i
		}
		produced += s.raw(src[text:i])
	}

	produced += s.str("<br>\r\n")
	return produced
}

// catSpaces writes n spaces HTML-safely: one space stays a space, longer
// runs alternate "&nbsp;" and " " starting with "&nbsp;".
func catSpaces(s *Sink, n int) int {
	if n == 1 {
		return s.str(" ")
	}
	produced := 0
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			produced += s.str("&nbsp;")
		} else {
			produced += s.str(" ")
		}
	}
	return produced
}

// CodeBlock converts the fenced or indented code block at the cursor into a
// W3.CSS code div. A non-empty title wraps the block in a titled card panel.
// The first line's indent is stripped from every line so the block sits
// flush left.
func (cv *Converter) CodeBlock(s *Sink, cur *Cursor, title string) int {
	src := cur.src
	start := cur.pos
	isBlock, fenced := cv.isCodeBlock(src, start)
	if !isBlock {
		return 0
	}

	color := cv.opts.CodeColor

	// indent of the opening line, tabs counted as single columns since the
	// stripped prefix is measured in bytes
	indent := lineIndent(src, start, 1)
	blockStart := start
	blockEnd := start
	mdEnd := start
	oneLine := false

	if fenced {
		blockStart = skipChars(src, start, " \t`")
		blockEnd = indexStr(src, blockStart, tripleTicks)
		if blockEnd < 0 {
			blockEnd = len(src)
		}
		if blockEnd < lineEnd(src, blockStart) {
			oneLine = true
		} else {
			blockStart = lineNext(src, blockStart)
			blockEnd = lineBeg(src, blockEnd)
		}
		mdEnd = lineNext(src, blockEnd)
	} else {
		line := start
		for line < len(src) && (lineIsBlank(src, line) || lineIndent(src, line, cv.opts.TabWidth) >= 4) {
			line = lineNext(src, line)
		}
		mdEnd, blockEnd = line, line
		prev := linePrev(src, line)
		if lineIsBlank(src, prev) {
			blockEnd = prev
		}
	}

	var produced int
	if title != "" {
		produced += s.str(`<div class="w3-panel w3-card `)
		produced += s.str(color)
		produced += s.str("\">\r\n")
		produced += s.str(`  <h5 id="`)
		produced += writeSlug(s, []byte(title))
		produced += s.str(`">`)
		produced += s.str(title)
		produced += s.str("</h5>\r\n  <div class=\"w3-code notranslate\">\r\n")
	} else {
		produced += s.str(`<div class="w3-code `)
		produced += s.str(color)
		produced += s.str(" notranslate\">\r\n")
	}

	if oneLine {
		produced += codeLineSegment(s, src, blockStart, blockEnd)
	} else {
		for line := blockStart; line < len(src) && line < blockEnd; line = lineNext(src, line) {
			produced += s.str("  ")
			if title != "" {
				produced += s.str("  ")
			}
			if lineLen(src, line) < indent || lineIsBlank(src, line) {
				produced += s.str("<br>\r\n")
			} else {
				produced += codeLineSegment(s, src, line+indent, lineEnd(src, line))
			}
		}
	}

	if title != "" {
		produced += s.str("  </div>\r\n")
	}
	produced += s.str("</div>\r\n")

	cur.pos = mdEnd
	return produced
}
