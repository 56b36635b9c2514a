package mdhtml

// EmphasisKind identifies an inline emphasis construct.
type EmphasisKind int

// Emphasis kinds in closing order: when a line ends with emphasis still
// open, kinds are force-closed from Italic upward.
const (
	EmphasisNone EmphasisKind = iota
	EmphasisItalic
	EmphasisBold
	EmphasisBoldItalic
	EmphasisHighlight
	EmphasisStrike
	EmphasisSubscript
	EmphasisSuperscript

	emphasisKinds
)

// emphasisInfo maps a marker run to its kind and tags.
type emphasisInfo struct {
	kind   EmphasisKind
	runLen int
	marker byte
	open   string
	close  string
}

var emphasisTable = []emphasisInfo{
	{EmphasisItalic, 1, '*', "<i>", "</i>"},
	{EmphasisBold, 2, '*', "<b>", "</b>"},
	{EmphasisBoldItalic, 3, '*', "<b><i>", "</i></b>"},
	{EmphasisHighlight, 2, '=', "<mark>", "</mark>"},
	{EmphasisStrike, 2, '~', "<del>", "</del>"},
	{EmphasisSubscript, 1, '~', "<sub>", "</sub>"},
	{EmphasisSuperscript, 1, '^', "<sup>", "</sup>"},
}

const emphasisMarkers = "*=~^"

// specialBytes are inline bytes that interrupt plain text copying. Must
// contain every emphasis marker.
const specialBytes = "*=~^&<![`"

// emphasisAt returns the emphasis info for the marker run at i, or nil.
// Four or more identical markers match nothing, and "~/" is a home path,
// never a subscript.
func emphasisAt(src []byte, i int) *emphasisInfo {
	if i >= len(src) || indexByteStr(emphasisMarkers, src[i]) < 0 {
		return nil
	}
	marker := src[i]
	run := chrCount(src, i, marker)
	for k := range emphasisTable {
		info := &emphasisTable[k]
		if info.marker != marker || info.runLen != run {
			continue
		}
		if info.kind == EmphasisSubscript && i+1 < len(src) && src[i+1] == '/' {
			continue
		}
		return info
	}
	return nil
}

// emphasisMatch finds the closing marker run for info within [i+run, end).
// Runs of the same marker but a different length are skipped. Mirrors the
// lenient original behavior: a final non-matching run at the search end
// still counts as a match.
func emphasisMatch(info *emphasisInfo, src []byte, i, end int) int {
	accept := string(info.marker)
	found := -1
	i += info.runLen
	for i < end {
		found = npBrk(src, i, end, accept)
		if found < 0 {
			break
		}
		count := chrCount(src, found, info.marker)
		if count == info.runLen {
			break
		}
		i = found + count
	}
	return found
}

// IsEmphasis returns the emphasis kind of the marker run at the cursor, or
// EmphasisNone.
func (cv *Converter) IsEmphasis(cur *Cursor) EmphasisKind {
	if info := emphasisAt(cur.src, cur.pos); info != nil {
		return info.kind
	}
	return EmphasisNone
}

// Emphasis converts the marker run at the cursor into its opening or closing
// tags and advances past the run. Writes nothing if the run maps to no kind.
func (cv *Converter) Emphasis(s *Sink, cur *Cursor, closing bool) int {
	info := emphasisAt(cur.src, cur.pos)
	if info == nil {
		return 0
	}
	cur.pos += info.runLen
	if closing {
		return s.str(info.close)
	}
	return s.str(info.open)
}

// closeEmphasis emits the closing tag for a kind directly, used when a line
// ends with emphasis still open.
func closeEmphasis(s *Sink, kind EmphasisKind) int {
	return s.str(emphasisTable[kind-1].close)
}
