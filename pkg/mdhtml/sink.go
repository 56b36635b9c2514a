package mdhtml

// A Sink receives converted HTML. It operates in one of two modes: measuring,
// where it counts every byte a conversion would produce without storing
// anything, or writing, where it stores bytes into a fixed buffer.
//
// A writing sink reserves the final byte of its buffer and never stores more
// than cap-1 bytes of content. Handlers report produced lengths independent
// of whether the bytes fit, so a measuring pass and a bounded write over the
// same input always return the same counts. Writing into a buffer of
// measured+1 bytes therefore stores the complete output.
type Sink struct {
	buf       []byte
	n         int
	measuring bool
}

// Measure returns a sink that counts output without storing it.
func Measure() *Sink {
	return &Sink{measuring: true}
}

// NewSink returns a sink that stores output into buf, reserving the final
// byte. Content beyond cap-1 bytes is counted but discarded.
func NewSink(buf []byte) *Sink {
	return &Sink{buf: buf}
}

// Measuring reports whether the sink counts without storing.
func (s *Sink) Measuring() bool { return s.measuring }

// Len returns the number of content bytes stored. For a measuring sink Len
// is always 0; handler return values carry the measured counts.
func (s *Sink) Len() int { return s.n }

// Bytes returns the stored content.
func (s *Sink) Bytes() []byte {
	if s.measuring {
		return nil
	}
	return s.buf[:s.n]
}

// String returns the stored content as a string.
func (s *Sink) String() string { return string(s.Bytes()) }

// put stores a single byte if room remains and returns 1, the produced
// length regardless of fit.
func (s *Sink) put(c byte) int {
	if !s.measuring && s.n < len(s.buf)-1 {
		s.buf[s.n] = c
		s.n++
	}
	return 1
}

// str writes a literal string.
func (s *Sink) str(str string) int {
	for i := 0; i < len(str); i++ {
		s.put(str[i])
	}
	return len(str)
}

// raw writes bytes verbatim.
func (s *Sink) raw(b []byte) int {
	for _, c := range b {
		s.put(c)
	}
	return len(b)
}

// fill writes n copies of c.
func (s *Sink) fill(c byte, n int) int {
	for i := 0; i < n; i++ {
		s.put(c)
	}
	return n
}

// md writes a Markdown segment collapsing backslash escapes: "\x" becomes
// "x" for printable x. A trailing backslash is dropped. Returns the produced
// length, which may be shorter than the segment.
func (s *Sink) md(b []byte) int {
	produced := 0
	for i := 0; i < len(b); i++ {
		if b[i] == '\\' && i+1 <= len(b) && (i+1 == len(b) || (b[i+1] > ' ' && b[i+1] <= '~')) {
			i++
			if i == len(b) {
				break
			}
		}
		produced += s.put(b[i])
	}
	return produced
}
