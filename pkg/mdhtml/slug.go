package mdhtml

// Slug characters besides alphanumerics: the unreserved marks of RFC 3986
// section 2.3.
const slugMarks = "-._~"

// isSlugByte reports whether c is kept verbatim in a slug: alphanumerics,
// the unreserved marks, and UTF-8 continuation/lead bytes.
func isSlugByte(c byte) bool {
	return isAlnumByte(c) || c > 0x80 || indexByteStr(slugMarks, c) >= 0
}

const hexDigits = "0123456789abcdef"

// Slug converts text into an anchor-safe slug: slug bytes are kept, bytes
// at or above 0x80 are percent-encoded, leading and trailing non-slug runs
// are stripped, and interior non-slug runs collapse to a single dash. A
// separator from "-._~" surrounded by single blanks survives as itself, so
// "4.8 - Some Section" becomes "4.8-Some-Section". Conversion stops at the
// first end-of-line.
func Slug(text []byte) string {
	n := writeSlug(Measure(), text)
	s := NewSink(make([]byte, n+1))
	writeSlug(s, text)
	return s.String()
}

// writeSlug writes the slug of src to the sink and returns the produced
// length.
func writeSlug(s *Sink, src []byte) int {
	i := 0
	end := len(src)
	produced := 0

	// strip leading non-slug bytes
	for i < end && !isEol(src[i]) && !isSlugByte(src[i]) {
		i++
	}

	for i < end && !isEol(src[i]) {
		// copy the slug run, percent-encoding non-ASCII bytes
		for i < end && isSlugByte(src[i]) {
			if src[i] >= 0x80 {
				produced += s.put('%')
				produced += s.put(hexDigits[src[i]>>4])
				produced += s.put(hexDigits[src[i]&0xf])
			} else {
				produced += s.put(src[i])
			}
			i++
		}

		// a blank-separated mark like " - " survives as the mark itself
		var sep byte
		if i+2 < end && isBlankByte(src[i]) && indexByteStr(slugMarks, src[i+1]) >= 0 && isBlankByte(src[i+2]) {
			sep = src[i+1]
			i += 3
		}
		for i < end && !isEol(src[i]) && !isSlugByte(src[i]) {
			sep = '-'
			i++
		}

		// interior whitespace collapses to one separator; trailing is dropped
		if sep != 0 && i < end && !isEol(src[i]) {
			produced += s.put(sep)
		}
	}

	return produced
}
