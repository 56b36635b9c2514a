package mdhtml

// DefaultTitle is used when a document is converted without a title.
const DefaultTitle = "No Title"

const documentHead1 = "<!DOCTYPE html>\r\n" +
	"<html>\r\n" +
	"<head>\r\n" +
	"<title>"

const documentHead2 = "</title>\r\n" +
	"<meta charset=\"UTF-8\" name=\"viewport\" content=\"width=device-width, initial-scale=1\">\r\n" +
	"<link rel=\"stylesheet\" href=\"https://www.w3schools.com/w3css/4/w3.css\">\r\n" +
	"</head>\r\n" +
	"<body>\r\n" +
	"<div class=\"w3-cell-row\">\r\n" +
	"  <div class=\"w3-container w3-cell w3-mobile\">\r\n"

const documentFoot = "  </div>\r\n" +
	"</div>\r\n" +
	"</body>\r\n" +
	"</html>\r\n"

// DocumentHead writes the opening of a W3.CSS HTML page with the given
// title, or DefaultTitle when empty.
func (cv *Converter) DocumentHead(s *Sink, title string) int {
	if title == "" {
		title = DefaultTitle
	}
	produced := s.str(documentHead1)
	produced += s.str(title)
	produced += s.str(documentHead2)
	return produced
}

// DocumentFoot writes the page closing opened by DocumentHead.
func (cv *Converter) DocumentFoot(s *Sink) int {
	return s.str(documentFoot)
}

// Document converts md into a complete HTML page: head, content, foot.
func (cv *Converter) Document(s *Sink, md []byte, title string) int {
	produced := cv.DocumentHead(s, title)
	produced += cv.Content(s, NewCursor(md), len(md))
	produced += cv.DocumentFoot(s)
	return produced
}
