package mdhtml

type listKind int

const (
	listNone listKind = iota
	listOrdered
	listUnordered
)

type checkboxKind int

const (
	checkboxNone checkboxKind = iota
	checkboxEmpty
	checkboxChecked
)

// listItemAt classifies the line at i: an ordered item is digits followed by
// a dot and a blank, an unordered item is one of "-+*" followed by a blank,
// and either may carry a [ ] or [x] checkbox. Returns the offset of the item
// text, which is i itself for non-list lines.
func listItemAt(src []byte, i int) (int, listKind, checkboxKind) {
	kind := listNone
	checkbox := checkboxNone

	if lineIsBlank(src, i) {
		return i, listNone, checkboxNone
	}

	p := skipWhite(src, i)
	if p < len(src) && isDigitByte(src[p]) {
		for p < len(src) && isDigitByte(src[p]) {
			p++
		}
		if p+1 < len(src) && src[p] == '.' && isBlankByte(src[p+1]) {
			kind = listOrdered
		}
		p++
	} else if p < len(src) && indexByteStr("-+*", src[p]) >= 0 && p+1 < len(src) && isBlankByte(src[p+1]) {
		kind = listUnordered
		p++
	}
	if kind == listNone || lineIsBlank(src, p) {
		return i, listNone, checkboxNone
	}

	p2 := skipWhite(src, p)
	if p2+2 < len(src) && src[p2] == '[' && src[p2+2] == ']' &&
		(src[p2+1] == ' ' || src[p2+1] == 'x' || src[p2+1] == 'X') {
		if src[p2+1] == ' ' {
			checkbox = checkboxEmpty
		} else {
			checkbox = checkboxChecked
		}
		p = p2 + 3
	}
	return skipWhite(src, p), kind, checkbox
}

// IsList reports whether the cursor is at a list item, and whether the item
// is ordered.
func (cv *Converter) IsList(cur *Cursor) (isList, ordered bool) {
	_, kind, _ := listItemAt(cur.src, cur.pos)
	return kind != listNone, kind == listOrdered
}

// List converts the list starting at the cursor, recursing into deeper
// indented sublists. Checkboxed items become <input type="checkbox"> tags
// identified by the slug of the item text.
func (cv *Converter) List(s *Sink, cur *Cursor) int {
	if _, kind, _ := listItemAt(cur.src, cur.pos); kind == listNone {
		return 0
	}
	indent := lineIndent(cur.src, cur.pos, cv.opts.TabWidth)
	return cv.listLevel(s, cur, indent, 0)
}

// listLevel renders one nesting level. The list tag comes from the first
// item; deeper indents recurse, shallower indents return to the caller.
func (cv *Converter) listLevel(s *Sink, cur *Cursor, indent, level int) int {
	src := cur.src
	_, kind, _ := listItemAt(src, cur.pos)

	produced := s.fill(' ', level*2)
	if kind == listOrdered {
		produced += s.str("<ol>\r\n")
	} else {
		produced += s.str("<ul>\r\n")
	}

	line := cur.pos
	openItem := false
loop:
	for {
		item, thisKind, checkbox := listItemAt(src, line)
		if thisKind == listNone {
			break
		}
		thisIndent := lineIndent(src, line, cv.opts.TabWidth)

		switch {
		case thisIndent > indent:
			// the open <li> line ends here; the sublist closes it later
			produced += s.str("\r\n")
			cur.pos = line
			produced += cv.listLevel(s, cur, thisIndent, level+1)
			line = cur.pos
			produced += s.fill(' ', level*2)
			openItem = true

		case thisIndent == indent:
			if openItem {
				produced += s.str("</li>\r\n")
				openItem = false
			}
			produced += s.fill(' ', level*2)
			produced += s.str("<li>")
			if checkbox != checkboxNone {
				produced += s.str(`<input type="checkbox" id="`)
				produced += writeSlug(s, src[item:lineEnd(src, item)])
				produced += s.str(`"`)
				if checkbox == checkboxChecked {
					produced += s.str(` checked="true"`)
				}
				produced += s.str("> ")
			}
			itemCur := &Cursor{src: src, pos: item}
			produced += cv.TextLine(s, itemCur, lineEnd(src, item))
			openItem = true
			line = lineNext(src, line)

		default:
			break loop
		}
	}

	if openItem {
		produced += s.str("</li>\r\n")
	}
	produced += s.fill(' ', level*2)
	if kind == listOrdered {
		produced += s.str("</ol>\r\n")
	} else {
		produced += s.str("</ul>\r\n")
	}
	cur.pos = line
	return produced
}
