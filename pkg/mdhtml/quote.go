package mdhtml

// quoteLevelMax bounds nesting; seven or more '>' markers read as plain text.
const quoteLevelMax = 6

// IsBlockQuote reports whether the cursor is at a block quote line, one to
// six leading '>' markers.
func (cv *Converter) IsBlockQuote(cur *Cursor) bool {
	return isBlockQuote(cur.src, cur.pos)
}

func isBlockQuote(src []byte, i int) bool {
	level := chrCount(src, i, '>')
	return level > 0 && level <= quoteLevelMax
}

// BlockQuote converts the run of block quote lines at the cursor into
// nested left-bar divs. Consecutive lines at one level accumulate into a
// paragraph, closed by a blank quote line or a level change; a footnote
// definition inside a quote opens an identified paragraph instead.
func (cv *Converter) BlockQuote(s *Sink, cur *Cursor) int {
	src := cur.src
	line := cur.pos
	if !isBlockQuote(src, line) {
		return 0
	}

	produced := 0
	inPara := false
	lastLevel := 0
	for {
		level := chrCount(src, line, '>')

		for lastLevel < level {
			if lastLevel > 0 {
				produced += s.fill(' ', 2*lastLevel)
			}
			produced += s.str("<div class=\"w3-panel w3-leftbar\">\r\n")
			lastLevel++
		}
		for lastLevel > level {
			lastLevel--
			if lastLevel > 0 {
				produced += s.fill(' ', 2*lastLevel)
			}
			produced += s.str("</div>\r\n")
		}
		if level == 0 {
			break
		}

		// text after the markers
		text := skipWhite(src, line+level)
		indented := false
		if !inPara {
			produced += s.fill(' ', 2*level)
			textCur := &Cursor{src: src, pos: text}
			if cv.IsRef(textCur) == RefFootnote {
				produced += cv.Ref(s, textCur)
			} else {
				produced += s.str("<p>")
			}
			inPara = true
			indented = true
			line = text
			text = textCur.pos
		} else {
			line = text
		}

		end := lineEnd(src, line)
		if end > line {
			if !indented {
				produced += s.fill(' ', 2*level)
			}
			textCur := &Cursor{src: src, pos: text}
			produced += cv.TextLine(s, textCur, end)
			if isBreakLine(src, line) {
				produced += s.str("<br>")
			}
		}

		// the paragraph closes on a blank quote line or a level change
		next := lineNext(src, line)
		nextLevel := chrCount(src, next, '>')
		if lineIsBlank(src, line) || nextLevel != level {
			produced += s.str("</p>")
			inPara = false
		}

		// end the line unless the next quote line is blank
		if !(nextLevel > 0 && lineIsBlank(src, next+nextLevel)) {
			produced += s.str("\r\n")
		}
		line = next
	}

	cur.pos = line
	return produced
}
