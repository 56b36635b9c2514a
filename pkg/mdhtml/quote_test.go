package mdhtml

import "testing"

func TestBlockQuote(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "bare marker",
			md:   ">",
			want: "<div class=\"w3-panel w3-leftbar\">\r\n" +
				"  <p></p>\r\n" +
				"</div>\r\n",
		},
		{
			name: "one line",
			md:   ">simple one line\n",
			want: "<div class=\"w3-panel w3-leftbar\">\r\n" +
				"  <p>simple one line</p>\r\n" +
				"</div>\r\n",
		},
		{
			name: "paragraphs and inline markup",
			md: "> block quote with\n" +
				">\n" +
				"> with Three paragraphs\n" +
				">\n" +
				"> One with *italics*, **bold**, ***bold & italics***, ==highlight==, ~~strike through~~ and\n" +
				"> `inline code`. Subscript and superscript look like this: H~2~O and x^2^.\n" +
				"\n",
			want: "<div class=\"w3-panel w3-leftbar\">\r\n" +
				"  <p>block quote with</p>\r\n" +
				"  <p>with Three paragraphs</p>\r\n" +
				"  <p>One with <i>italics</i>, <b>bold</b>, <b><i>bold &amp; italics</i></b>, " +
				"<mark>highlight</mark>, <del>strike through</del> and\r\n" +
				"  <code class=\"w3-codespan\">inline code</code>. Subscript and superscript look like this: " +
				"H<sub>2</sub>O and x<sup>2</sup>.</p>\r\n" +
				"</div>\r\n",
		},
		{
			name: "not a quote",
			md:   "not a block quote",
			want: "",
		},
	}

	cv := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if is := cv.IsBlockQuote(NewCursor([]byte(tt.md))); is != (tt.want != "") {
				t.Errorf("IsBlockQuote = %v, want %v", is, tt.want != "")
			}
			html, _ := render(t, tt.md, func(s *Sink, cur *Cursor) int {
				return cv.BlockQuote(s, cur)
			})
			if html != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", html, tt.want)
			}
		})
	}
}

func TestBlockQuote_Nested(t *testing.T) {
	const md = "> outer\n" +
		">> inner\n" +
		"> outer again\n"
	cv := New(Options{})
	html, _ := render(t, md, func(s *Sink, cur *Cursor) int {
		return cv.BlockQuote(s, cur)
	})

	want := "<div class=\"w3-panel w3-leftbar\">\r\n" +
		"  <p>outer</p>\r\n" +
		"  <div class=\"w3-panel w3-leftbar\">\r\n" +
		"    <p>inner</p>\r\n" +
		"  </div>\r\n" +
		"  <p>outer again</p>\r\n" +
		"</div>\r\n"
	if html != want {
		t.Errorf("got:\n%s\nwant:\n%s", html, want)
	}
}
