package mdhtml

// Escape-aware scanning over Markdown text. These scanners never match
// characters behind a backslash escape, and npBrk additionally skips the
// inside of `inline code` spans unless the backtick itself is a break char.

// isEscapable reports whether c may follow a backslash to form an escape.
func isEscapable(c byte) bool { return c > ' ' && c <= '~' }

// npBrk finds the first byte of accept within [i, end), skipping escaped
// characters and inline code spans. Returns -1 if none found.
func npBrk(src []byte, i, end int, accept string) int {
	inCode := false
	codeOK := indexByteStr(accept, '`') < 0

	for i < end && i < len(src) {
		if src[i] == '\\' && i+1 < end && isEscapable(src[i+1]) {
			i += 2
			continue
		}
		if codeOK && src[i] == '`' {
			inCode = !inCode
		}
		if !inCode && indexByteStr(accept, src[i]) >= 0 {
			return i
		}
		i++
	}
	return -1
}

// linePBrk is npBrk bounded to the current line.
func linePBrk(src []byte, i int, accept string) int {
	return npBrk(src, i, lineEnd(src, i), accept)
}

// mdLineChr finds c within the line at i, skipping escaped characters.
// Returns -1 if not found before end of line.
func mdLineChr(src []byte, i int, c byte) int {
	for i < len(src) && !isEol(src[i]) {
		if src[i] == '\\' {
			i++
			if i < len(src) {
				i++
			}
			continue
		}
		if src[i] == c {
			return i
		}
		i++
	}
	return -1
}

// nChrMatch finds the first byte of set within [i, end). Returns -1 if none.
func nChrMatch(src []byte, i, end int, set string) int {
	for i < end && i < len(src) {
		if indexByteStr(set, src[i]) >= 0 {
			return i
		}
		i++
	}
	return -1
}

// nChr finds c within n bytes starting at i. Returns -1 if not found.
func nChr(src []byte, i, n int, c byte) int {
	for i < len(src) && n > 0 {
		if src[i] == c {
			return i
		}
		i++
		n--
	}
	return -1
}

// nStr finds needle within n bytes starting at i. Returns -1 if not found.
func nStr(src []byte, i, n int, needle string) int {
	for n >= len(needle) && i+len(needle) <= len(src) {
		if string(src[i:i+len(needle)]) == needle {
			return i
		}
		i++
		n--
	}
	return -1
}

// indexStr finds needle at or after i with no length bound. Returns -1 if
// not found.
func indexStr(src []byte, i int, needle string) int {
	for i+len(needle) <= len(src) {
		if string(src[i:i+len(needle)]) == needle {
			return i
		}
		i++
	}
	return -1
}

// escEndQuoted returns the offset of the quote closing the quoted string
// opening at i, honoring backslash escapes. If src[i] is not a quote, i is
// returned; if the line ends first, the end-of-line offset is returned.
func escEndQuoted(src []byte, i int) int {
	if i < len(src) && src[i] == '"' {
		i++
		for i < len(src) && !isEol(src[i]) {
			if src[i] == '"' {
				break
			}
			if src[i] == '\\' {
				i += 2
			} else {
				i++
			}
		}
	}
	if i > len(src) {
		i = len(src)
	}
	return i
}
