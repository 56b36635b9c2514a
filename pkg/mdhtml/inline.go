package mdhtml

// IsQuickLink reports whether the cursor is at a quick link such as
// <https://mysite.com>, <me@mysite.com> or <#anchor>. The closing bracket
// must be on the same line, the last byte before it must not look like the
// end of an HTML tag, and the content must contain one of ".@#".
func (cv *Converter) IsQuickLink(cur *Cursor) bool {
	return isQuickLink(cur.src, cur.pos)
}

func isQuickLink(src []byte, i int) bool {
	if i >= len(src) || src[i] != '<' || i+1 >= len(src) || isBlankByte(src[i+1]) {
		return false
	}
	end := lineChr(src, i, '>')
	if end < 0 {
		return false
	}
	// <tag attr=""> and <tag > are HTML, not quick links
	last := end - 1
	if src[last] == '"' || isBlankByte(src[last]) {
		return false
	}
	return nChrMatch(src, i, end, ".@#") >= 0
}

// QuickLink converts the quick link at the cursor into an anchor. Content
// containing '@' is linked as mailto.
func (cv *Converter) QuickLink(s *Sink, cur *Cursor) int {
	if !isQuickLink(cur.src, cur.pos) {
		return 0
	}
	src, i := cur.src, cur.pos
	end := lineChr(src, i, '>')
	content := src[i+1 : end]
	if len(content) == 0 {
		return 0
	}

	produced := s.str(`<a href="`)
	if nChr(src, i, len(content), '@') >= 0 {
		produced += s.str("mailto:")
	}
	produced += s.raw(content)
	produced += s.str(`">`)
	produced += s.raw(content)
	produced += s.str(`</a>`)

	cur.pos = end + 1
	return produced
}

// CodeSpan converts the `inline code` at the cursor. The span ends at the
// next unescaped backtick or at end of line. An empty span produces nothing
// but still consumes its backticks.
func (cv *Converter) CodeSpan(s *Sink, cur *Cursor) int {
	src, i := cur.src, cur.pos
	if i >= len(src) || src[i] != '`' {
		return 0
	}

	end := linePBrk(src, i+1, "`")
	closed := end >= 0
	if !closed {
		end = lineEnd(src, i)
	}
	content := src[i+1 : end]

	consumed := len(content) + 1
	if closed {
		consumed++
	}
	if len(content) == 0 {
		cur.pos += consumed
		return 0
	}

	produced := s.str(`<code class="w3-codespan">`)
	produced += s.raw(content)
	produced += s.str(`</code>`)
	cur.pos += consumed
	return produced
}

// IsBreak reports whether the line at the cursor ends with a hard break,
// two or more trailing spaces.
func (cv *Converter) IsBreak(cur *Cursor) bool {
	return isBreakLine(cur.src, cur.pos)
}

func isBreakLine(src []byte, i int) bool {
	return chrCountRev(src, i, lineEnd(src, i), ' ') >= 2
}

// TextLine converts inline Markdown within [cursor, end): emphasis, code
// spans, quick links, references, and the HTML-special bytes & and <.
// Emphasis left open at end is force-closed in kind order. The cursor ends
// at end. The trailing hard-break tag is the caller's concern.
func (cv *Converter) TextLine(s *Sink, cur *Cursor, end int) int {
	src := cur.src
	if cur.pos >= end {
		return 0
	}

	var open [emphasisKinds]bool
	produced := 0
	i := cur.pos
	for i < end {
		// copy plain text up to the next special byte
		next := npBrk(src, i, end, specialBytes)
		if next < 0 {
			next = end
		}
		if next > i {
			produced += s.md(src[i:next])
		}
		if next == end {
			break
		}
		i = next

		switch {
		case src[i] == '`':
			cur.pos = i
			produced += cv.CodeSpan(s, cur)
			i = cur.pos

		case isQuickLink(src, i):
			cur.pos = i
			produced += cv.QuickLink(s, cur)
			i = cur.pos

		case src[i] == '!' || src[i] == '[':
			ref, refEnd := parseRef(src, i)
			// footnote definitions are a paragraph-level construct; treat
			// one appearing mid-line as plain text
			if refEnd >= 0 && ref.kind != RefNone && ref.kind != RefFootnote {
				cur.pos = i
				produced += cv.Ref(s, cur)
				i = cur.pos
			} else {
				if src[i] == '!' {
					produced += s.str("!")
					i++
				}
				if i < end && src[i] == '[' {
					produced += s.str("[")
					i++
				}
			}

		case indexByteStr(emphasisMarkers, src[i]) >= 0:
			info := emphasisAt(src, i)
			if info != nil && !open[info.kind] && emphasisMatch(info, src, i, end) < 0 {
				info = nil
			}
			if info != nil {
				cur.pos = i
				produced += cv.Emphasis(s, cur, open[info.kind])
				open[info.kind] = !open[info.kind]
				i = cur.pos
			} else {
				run := chrCount(src, i, src[i])
				produced += s.fill(src[i], run)
				i += run
			}

		case src[i] == '&':
			produced += s.str("&amp;")
			i++

		case src[i] == '<':
			produced += s.str("&lt;")
			i++
		}
	}

	// close any emphasis still open on the line
	for kind := EmphasisKind(1); kind < emphasisKinds; kind++ {
		if open[kind] {
			produced += closeEmphasis(s, kind)
		}
	}

	cur.pos = end
	return produced
}
