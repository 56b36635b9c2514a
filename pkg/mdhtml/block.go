package mdhtml

// Paragraph converts the paragraph at the cursor. A paragraph opens on a
// non-blank line and accumulates lines until a blank line, a code fence, a
// heading or a horizontal rule. A footnote definition opens an identified
// paragraph; lines with trailing hard breaks get <br>.
func (cv *Converter) Paragraph(s *Sink, cur *Cursor) int {
	src := cur.src
	line := cur.pos
	if line >= len(src) || lineIsBlank(src, line) {
		return 0
	}

	produced := 0
	lineCur := &Cursor{src: src, pos: line}
	if cv.IsRef(lineCur) == RefFootnote {
		produced += cv.Ref(s, lineCur)
	} else {
		produced += s.str("<p>")
	}

	for line < len(src) && !lineIsBlank(src, line) {
		if _, fenced := cv.isCodeBlock(src, line); fenced {
			break
		}
		if _, isHeading := cv.IsHeading(&Cursor{src: src, pos: line}); isHeading {
			break
		}
		if isHorzRule(src, line) {
			break
		}

		next := lineNext(src, line)
		textCur := &Cursor{src: src, pos: line}
		produced += cv.TextLine(s, textCur, lineEnd(src, line))
		if isBreakLine(src, line) {
			produced += s.str("<br>")
		}
		if !lineIsBlank(src, next) {
			produced += s.str("\r\n")
		}
		line = next
	}

	produced += s.str("</p>\r\n")
	cur.pos = line
	return produced
}

// Content converts Markdown blocks until end, skipping blank lines between
// blocks. Precedence per line: heading, block quote, horizontal rule, code
// block, list, table, then paragraph. Stops when a handler makes no
// progress.
func (cv *Converter) Content(s *Sink, cur *Cursor, end int) int {
	src := cur.src
	if end > len(src) {
		end = len(src)
	}

	produced := 0
	for cur.pos < end {
		cur.pos = lineSkipBlank(src, cur.pos)
		if cur.pos >= end {
			break
		}

		var thisLen int
		switch {
		case cv.isHeadingAt(src, cur.pos):
			cv.tracef("heading at %d", cur.pos)
			thisLen = cv.Heading(s, cur)
		case isBlockQuote(src, cur.pos):
			cv.tracef("block quote at %d", cur.pos)
			thisLen = cv.BlockQuote(s, cur)
		case isHorzRule(src, cur.pos):
			cv.tracef("horizontal rule at %d", cur.pos)
			thisLen = cv.HorzRule(s, cur)
		case cv.isCodeBlockAt(src, cur.pos):
			cv.tracef("code block at %d", cur.pos)
			thisLen = cv.CodeBlock(s, cur, "")
		case cv.isListAt(src, cur.pos):
			cv.tracef("list at %d", cur.pos)
			thisLen = cv.List(s, cur)
		case cv.isTableAt(src, cur.pos):
			cv.tracef("table at %d", cur.pos)
			thisLen = cv.Table(s, cur)
		default:
			cv.tracef("paragraph at %d", cur.pos)
			thisLen = cv.Paragraph(s, cur)
		}

		if thisLen == 0 {
			break
		}
		produced += thisLen
	}
	return produced
}

func (cv *Converter) isHeadingAt(src []byte, i int) bool {
	_, after := headingAt(src, i)
	return after >= 0
}

func (cv *Converter) isCodeBlockAt(src []byte, i int) bool {
	isBlock, _ := cv.isCodeBlock(src, i)
	return isBlock
}

func (cv *Converter) isListAt(src []byte, i int) bool {
	_, kind, _ := listItemAt(src, i)
	return kind != listNone
}

func (cv *Converter) isTableAt(src []byte, i int) bool {
	n, _ := tableCols(src, i)
	return n > 0
}
