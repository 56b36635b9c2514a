package mdhtml

import (
	"github.com/charmbracelet/log"
)

// DefaultTabWidth is the column width of a tab when computing indentation.
const DefaultTabWidth = 8

// DefaultCodeColor is the W3.CSS color class applied to untitled code blocks.
const DefaultCodeColor = "w3-light-grey"

// Options configure a Converter. The zero value selects the defaults.
type Options struct {
	// TabWidth is the column width of a tab for indent-sensitive constructs
	// (indented code blocks, nested lists). Defaults to DefaultTabWidth.
	TabWidth int

	// CodeColor is the W3.CSS color class for code blocks. Defaults to
	// DefaultCodeColor.
	CodeColor string

	// HeadingColor is an optional W3.CSS color class added to headings,
	// e.g. "w3-red". Empty means no class attribute.
	HeadingColor string

	// Logger, when non-nil, receives per-block trace output. Conversion is
	// silent without it.
	Logger *log.Logger
}

// A Converter turns Markdown into HTML. A single Converter is safe for
// concurrent use; all conversion state lives in the Sink and Cursor passed
// to each call.
type Converter struct {
	opts Options
}

// New returns a Converter with the given options.
func New(opts Options) *Converter {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultTabWidth
	}
	if opts.CodeColor == "" {
		opts.CodeColor = DefaultCodeColor
	}
	return &Converter{opts: opts}
}

// tracef logs a conversion event when a trace logger is configured.
func (cv *Converter) tracef(format string, args ...any) {
	if cv.opts.Logger != nil {
		cv.opts.Logger.Debugf(format, args...)
	}
}

// ConvertFragment converts Markdown to an HTML fragment, measuring first and
// then writing into an exactly-sized buffer.
func (cv *Converter) ConvertFragment(md []byte) []byte {
	n := cv.Content(Measure(), NewCursor(md), len(md))
	s := NewSink(make([]byte, n+1))
	cv.Content(s, NewCursor(md), len(md))
	return s.Bytes()
}

// ConvertDocument converts Markdown to a complete HTML page with the given
// title, measuring first and then writing into an exactly-sized buffer.
func (cv *Converter) ConvertDocument(md []byte, title string) []byte {
	n := cv.Document(Measure(), md, title)
	s := NewSink(make([]byte, n+1))
	cv.Document(s, md, title)
	return s.Bytes()
}
