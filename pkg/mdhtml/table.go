package mdhtml

// TableColMax is the largest number of columns a table may declare.
const TableColMax = 26

type tableAlign int

const (
	alignLeft tableAlign = iota
	alignCenter
	alignRight
)

// tableCellCount counts the cells on the line at i. Pipes are counted
// escape-aware; text after the last pipe adds one more cell, so "a|" is one
// cell and "a|b" is two.
func tableCellCount(src []byte, i int) int {
	end := lineEnd(src, i)
	count := 0
	last := -1
	for i < end {
		p := mdLineChr(src, i, '|')
		if p < 0 {
			break
		}
		count++
		i = p + 1
		last = i
	}
	if count > 0 && skipWhite(src, last) < end {
		count++
	}
	return count
}

// tableCellGet returns the trimmed bounds of the cell at i and the offset of
// the next cell, which is the end of line when no pipe remains.
func tableCellGet(src []byte, i int) (cell, cellLen, next int) {
	cell = skipWhite(src, i)
	p := mdLineChr(src, cell, '|')
	if p >= 0 {
		next = p + 1
	} else {
		p = lineEnd(src, cell)
		next = p
	}
	for p > cell {
		p--
		if !isBlankByte(src[p]) {
			cellLen = p - cell + 1
			break
		}
	}
	return cell, cellLen, next
}

// tableCols validates the header and alignment lines at i. Each alignment
// cell must be at least three of ':' and '-'; a leading colon with no
// trailing one is left, trailing only is right, both is center. Returns the
// column count and alignments, or 0 when i does not start a table.
func tableCols(src []byte, i int) (int, [TableColMax]tableAlign) {
	var aligns [TableColMax]tableAlign

	nCols := tableCellCount(src, i)
	if nCols == 0 {
		return 0, aligns
	}
	if nCols > TableColMax {
		nCols = TableColMax
	}

	next := lineNext(src, i)
	for col := 0; col < nCols; col++ {
		cell, cellLen, after := tableCellGet(src, next)
		next = after
		if cellLen < 3 {
			return 0, aligns
		}
		for j := 0; j < cellLen; j++ {
			if src[cell+j] != ':' && src[cell+j] != '-' {
				return 0, aligns
			}
		}
		switch {
		case src[cell] == ':' && src[cell+cellLen-1] == ':':
			aligns[col] = alignCenter
		case src[cell+cellLen-1] == ':':
			aligns[col] = alignRight
		default:
			aligns[col] = alignLeft
		}
	}
	return nCols, aligns
}

// IsTable reports whether the cursor is at a table: a header line followed
// by a valid alignment line.
func (cv *Converter) IsTable(cur *Cursor) bool {
	n, _ := tableCols(cur.src, cur.pos)
	return n > 0
}

// Table converts the table at the cursor into a W3.CSS table. Data rows are
// the following lines containing an unescaped pipe; missing cells render
// empty, and cell text goes through the inline converter.
func (cv *Converter) Table(s *Sink, cur *Cursor) int {
	src := cur.src
	line := cur.pos
	nCols, aligns := tableCols(src, line)
	if nCols == 0 {
		return 0
	}

	produced := s.str("<table class=\"w3-table-all\" style=\"width:auto\">\r\n")
	produced += s.str("<tr>\r\n")
	next := line
	for col := 0; col < nCols; col++ {
		cell, cellLen, after := tableCellGet(src, next)
		next = after
		switch aligns[col] {
		case alignRight:
			produced += s.str(`  <th class="w3-right-align">`)
		case alignCenter:
			produced += s.str(`  <th class="w3-center">`)
		default:
			produced += s.str("  <th>")
		}
		if cellLen > 0 {
			produced += s.raw(src[cell : cell+cellLen])
		}
		produced += s.str("</th>\r\n")
	}
	produced += s.str("</tr>\r\n")

	// past the header and alignment lines
	line = lineNext(src, lineNext(src, line))

	for mdLineChr(src, line, '|') >= 0 {
		produced += s.str("<tr>\r\n")
		next = line
		for col := 0; col < nCols; col++ {
			cell, cellLen, after := tableCellGet(src, next)
			next = after
			switch aligns[col] {
			case alignRight:
				produced += s.str(`  <td class="w3-right-align">`)
			case alignCenter:
				produced += s.str(`  <td class="w3-center">`)
			default:
				produced += s.str("  <td>")
			}
			if cellLen > 0 {
				cellCur := &Cursor{src: src, pos: cell}
				produced += cv.TextLine(s, cellCur, cell+cellLen)
			}
			produced += s.str("</td>\r\n")
		}
		produced += s.str("</tr>\r\n")
		line = lineNext(src, line)
	}

	produced += s.str("</table>\r\n")
	cur.pos = line
	return produced
}
