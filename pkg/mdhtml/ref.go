package mdhtml

// RefKind identifies the bracketed reference constructs.
type RefKind int

const (
	RefNone     RefKind = iota
	RefImage            // ![alt text](file.png "title")
	RefLink             // [ref text](site.com/page)
	RefFootRef          // [^footnote]
	RefFootnote         // [^footnote]: paragraph text
)

// reference holds the parsed fields of a bracketed reference. Field slices
// alias the source.
type reference struct {
	kind  RefKind
	alt   []byte
	link  []byte
	title []byte // nil when absent; non-nil but possibly empty when present
}

// parseRef parses the reference at i. Returns the parsed fields and the
// offset just past the construct, or kind RefNone and -1 when i does not
// start a valid reference. References never span lines.
func parseRef(src []byte, i int) (reference, int) {
	var ref reference

	// optional image bang, then the [alt] field
	if i < len(src) && src[i] == '!' {
		ref.kind = RefImage
		i++
	}
	if i >= len(src) || src[i] != '[' {
		return reference{}, -1
	}
	i++
	altEnd := linePBrk(src, i, "]")
	if altEnd < 0 {
		return reference{}, -1
	}
	ref.alt = src[i:altEnd]
	// only images may have empty alt text
	if len(ref.alt) == 0 && ref.kind != RefImage {
		return reference{}, -1
	}
	i = altEnd + 1

	// footnote definition or footnote reference
	if len(ref.alt) > 1 && ref.alt[0] == '^' {
		if i < len(src) && src[i] == ':' {
			ref.kind = RefFootnote
			i++
		} else {
			ref.kind = RefFootRef
		}
		return ref, i
	}

	// the (link "title") field
	if i >= len(src) || src[i] != '(' {
		return reference{}, -1
	}
	i = skipWhite(src, i+1)
	if i < len(src) && src[i] == '"' {
		// title must follow a link
		return reference{}, -1
	}
	linkStart := i
	linkEnd := linePBrk(src, i, " \t\")")
	if linkEnd < 0 || (!isBlankByte(src[linkEnd]) && src[linkEnd] != ')') {
		return reference{}, -1
	}
	i = skipWhite(src, linkEnd)
	if i >= len(src) || (src[i] != '"' && src[i] != ')') {
		return reference{}, -1
	}
	ref.link = src[linkStart:linkEnd]
	if len(ref.link) == 0 {
		return reference{}, -1
	}

	// optional "title", images only
	if src[i] == '"' {
		titleEnd := escEndQuoted(src, i)
		if titleEnd == i {
			return reference{}, -1
		}
		if ref.kind != RefImage {
			return reference{}, -1
		}
		ref.title = src[i+1 : titleEnd]
		i = skipWhite(src, titleEnd+1)
	}

	if i >= len(src) || src[i] != ')' {
		return reference{}, -1
	}
	if ref.kind == RefNone {
		ref.kind = RefLink
	}
	return ref, i + 1
}

// IsRef returns the kind of reference at the cursor, or RefNone.
func (cv *Converter) IsRef(cur *Cursor) RefKind {
	ref, end := parseRef(cur.src, cur.pos)
	if end < 0 {
		return RefNone
	}
	return ref.kind
}

// IsImage reports whether the cursor is at an image reference.
func (cv *Converter) IsImage(cur *Cursor) bool {
	return cv.IsRef(cur) == RefImage
}

// Image converts the image reference at the cursor into an <img> tag. The
// optional title steers the attributes: a title starting "w3-" becomes a
// class with a fixed 150px width, a title mentioning class or style is
// copied verbatim as attributes, anything else is a plain title attribute.
func (cv *Converter) Image(s *Sink, cur *Cursor) int {
	ref, end := parseRef(cur.src, cur.pos)
	if end < 0 || ref.kind != RefImage {
		return 0
	}

	produced := s.str(`<img src="`)
	produced += s.raw(ref.link)
	produced += s.str(`"`)
	produced += s.str(` alt="`)
	produced += s.raw(ref.alt)
	produced += s.str(`"`)

	if ref.title != nil {
		switch {
		case len(ref.title) >= 3 && string(ref.title[:3]) == "w3-":
			produced += s.str(` class="`)
			produced += s.raw(ref.title)
			produced += s.str(`" style="width:150px"`)
		case nStr(ref.title, 0, len(ref.title), "class") >= 0 ||
			nStr(ref.title, 0, len(ref.title), "style") >= 0:
			produced += s.str(" ")
			produced += s.md(ref.title)
		default:
			produced += s.str(` title="`)
			produced += s.raw(ref.title)
			produced += s.str(`"`)
		}
	}

	produced += s.str(">")
	cur.pos = end
	return produced
}

// Ref converts the reference at the cursor: links become anchors, footnote
// references become anchors to the footnote slug, and footnote definitions
// open an identified paragraph that the caller completes.
func (cv *Converter) Ref(s *Sink, cur *Cursor) int {
	ref, end := parseRef(cur.src, cur.pos)
	if end < 0 {
		return 0
	}

	var produced int
	switch ref.kind {
	case RefImage:
		return cv.Image(s, cur)

	case RefLink:
		produced += s.str(`<a href="`)
		produced += s.raw(ref.link)
		produced += s.str(`">`)
		produced += s.raw(ref.alt)
		produced += s.str(`</a>`)

	case RefFootRef:
		produced += s.str(`<a href="#`)
		produced += writeSlug(s, ref.alt)
		produced += s.str(`">[`)
		produced += s.raw(ref.alt)
		produced += s.str(`]</a>`)

	case RefFootnote:
		produced += s.str(`<p id="`)
		produced += writeSlug(s, ref.alt)
		produced += s.str(`">`)
	}

	cur.pos = end
	return produced
}
