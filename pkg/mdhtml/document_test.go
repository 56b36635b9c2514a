package mdhtml

import (
	"strings"
	"testing"
)

func TestDocument(t *testing.T) {
	const md = "# Welcome\nSome text.\n"
	cv := New(Options{})
	got := string(cv.ConvertDocument([]byte(md), "My Page"))

	wantPrefix := "<!DOCTYPE html>\r\n" +
		"<html>\r\n" +
		"<head>\r\n" +
		"<title>My Page</title>\r\n" +
		"<meta charset=\"UTF-8\" name=\"viewport\" content=\"width=device-width, initial-scale=1\">\r\n" +
		"<link rel=\"stylesheet\" href=\"https://www.w3schools.com/w3css/4/w3.css\">\r\n" +
		"</head>\r\n" +
		"<body>\r\n" +
		"<div class=\"w3-cell-row\">\r\n" +
		"  <div class=\"w3-container w3-cell w3-mobile\">\r\n"
	wantSuffix := "  </div>\r\n" +
		"</div>\r\n" +
		"</body>\r\n" +
		"</html>\r\n"

	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("document head:\n%s\nwant prefix:\n%s", got, wantPrefix)
	}
	if !strings.HasSuffix(got, wantSuffix) {
		t.Errorf("document foot:\n%s\nwant suffix:\n%s", got, wantSuffix)
	}
	if !strings.Contains(got, "<h1 id=\"Welcome\">Welcome</h1>\r\n<p>Some text.</p>\r\n") {
		t.Errorf("document body missing converted content:\n%s", got)
	}
}

func TestDocument_DefaultTitle(t *testing.T) {
	cv := New(Options{})
	got := string(cv.ConvertDocument([]byte("text\n"), ""))
	if !strings.Contains(got, "<title>No Title</title>\r\n") {
		t.Errorf("expected default title, got:\n%s", got)
	}
}

func TestDocument_MeasureMatchesWrite(t *testing.T) {
	const md = "# Title\n\n> quote\n\n* item 1\n* item 2\n\n```\ncode\n```\n"
	cv := New(Options{})

	n := cv.Document(Measure(), []byte(md), "T")
	s := NewSink(make([]byte, n+1))
	if got := cv.Document(s, []byte(md), "T"); got != n {
		t.Fatalf("write pass produced %d, measure pass produced %d", got, n)
	}
	if s.Len() != n {
		t.Fatalf("stored %d bytes, want %d", s.Len(), n)
	}
}
