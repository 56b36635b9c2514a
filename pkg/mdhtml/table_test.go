package mdhtml

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "one column",
			md: "1|\n" +
				"---\n" +
				"a|\n",
			want: "<table class=\"w3-table-all\" style=\"width:auto\">\r\n" +
				"<tr>\r\n" +
				"  <th>1</th>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>a</td>\r\n" +
				"</tr>\r\n" +
				"</table>\r\n",
		},
		{
			name: "header only",
			md: "1|2\n" +
				"---|---\n",
			want: "<table class=\"w3-table-all\" style=\"width:auto\">\r\n" +
				"<tr>\r\n" +
				"  <th>1</th>\r\n" +
				"  <th>2</th>\r\n" +
				"</tr>\r\n" +
				"</table>\r\n",
		},
		{
			name: "two columns",
			md: "a|b\n" +
				"---|---\n" +
				"c|d\n",
			want: "<table class=\"w3-table-all\" style=\"width:auto\">\r\n" +
				"<tr>\r\n" +
				"  <th>a</th>\r\n" +
				"  <th>b</th>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>c</td>\r\n" +
				"  <td>d</td>\r\n" +
				"</tr>\r\n" +
				"</table>\r\n",
		},
		{
			name: "alignment and inline cells",
			md: "Name           | Description       | Age In Years\n" +
				":------------- | :---------------: | --:\n" +
				"Joe JoJo       |                   | [29](https://en.wikipedia.org/wiki/Birthday)\n" +
				"Jane N. Tarzan | Swings & yodels   | 19\n" +
				"Bob            | `Floats` in water | 65\n",
			want: "<table class=\"w3-table-all\" style=\"width:auto\">\r\n" +
				"<tr>\r\n" +
				"  <th>Name</th>\r\n" +
				"  <th class=\"w3-center\">Description</th>\r\n" +
				"  <th class=\"w3-right-align\">Age In Years</th>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>Joe JoJo</td>\r\n" +
				"  <td class=\"w3-center\"></td>\r\n" +
				"  <td class=\"w3-right-align\"><a href=\"https://en.wikipedia.org/wiki/Birthday\">29</a></td>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>Jane N. Tarzan</td>\r\n" +
				"  <td class=\"w3-center\">Swings &amp; yodels</td>\r\n" +
				"  <td class=\"w3-right-align\">19</td>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>Bob</td>\r\n" +
				"  <td class=\"w3-center\"><code class=\"w3-codespan\">Floats</code> in water</td>\r\n" +
				"  <td class=\"w3-right-align\">65</td>\r\n" +
				"</tr>\r\n" +
				"</table>\r\n",
		},
		{
			name: "short rows pad with blanks",
			md: "a|b|c|d\n" +
				"---|---|---|---\n" +
				"one cell|||\n" +
				"cell2a|cell2b\n" +
				"cell3a|cell3b|cell3c|cell3d\n" +
				"not cell line",
			want: "<table class=\"w3-table-all\" style=\"width:auto\">\r\n" +
				"<tr>\r\n" +
				"  <th>a</th>\r\n" +
				"  <th>b</th>\r\n" +
				"  <th>c</th>\r\n" +
				"  <th>d</th>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>one cell</td>\r\n" +
				"  <td></td>\r\n" +
				"  <td></td>\r\n" +
				"  <td></td>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>cell2a</td>\r\n" +
				"  <td>cell2b</td>\r\n" +
				"  <td></td>\r\n" +
				"  <td></td>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>cell3a</td>\r\n" +
				"  <td>cell3b</td>\r\n" +
				"  <td>cell3c</td>\r\n" +
				"  <td>cell3d</td>\r\n" +
				"</tr>\r\n" +
				"</table>\r\n",
		},
		{
			name: "no alignment line",
			md: " Not | A | Table\n" +
				"\n",
			want: "",
		},
		{
			name: "three columns no trailing newline",
			md: "a|b|c\n" +
				"---|---|---\n" +
				"1|2|3",
			want: "<table class=\"w3-table-all\" style=\"width:auto\">\r\n" +
				"<tr>\r\n" +
				"  <th>a</th>\r\n" +
				"  <th>b</th>\r\n" +
				"  <th>c</th>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>1</td>\r\n" +
				"  <td>2</td>\r\n" +
				"  <td>3</td>\r\n" +
				"</tr>\r\n" +
				"</table>\r\n",
		},
		{
			name: "extra alignment cells allowed",
			md: "a|b|c\n" +
				"---|---|---|---\n" +
				"1|2|3",
			want: "<table class=\"w3-table-all\" style=\"width:auto\">\r\n" +
				"<tr>\r\n" +
				"  <th>a</th>\r\n" +
				"  <th>b</th>\r\n" +
				"  <th>c</th>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>1</td>\r\n" +
				"  <td>2</td>\r\n" +
				"  <td>3</td>\r\n" +
				"</tr>\r\n" +
				"</table>\r\n",
		},
		{
			name: "missing alignment cells rejected",
			md: "a|b|c|d\n" +
				"---|---|---\n" +
				"1|2|3",
			want: "",
		},
		{
			name: "short data row padded",
			md: "a|b|c|d\n" +
				"---|---|---|---\n" +
				"1|2|3",
			want: "<table class=\"w3-table-all\" style=\"width:auto\">\r\n" +
				"<tr>\r\n" +
				"  <th>a</th>\r\n" +
				"  <th>b</th>\r\n" +
				"  <th>c</th>\r\n" +
				"  <th>d</th>\r\n" +
				"</tr>\r\n" +
				"<tr>\r\n" +
				"  <td>1</td>\r\n" +
				"  <td>2</td>\r\n" +
				"  <td>3</td>\r\n" +
				"  <td></td>\r\n" +
				"</tr>\r\n" +
				"</table>\r\n",
		},
	}

	cv := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if is := cv.IsTable(NewCursor([]byte(tt.md))); is != (tt.want != "") {
				t.Errorf("IsTable = %v, want %v", is, tt.want != "")
			}
			html, _ := render(t, tt.md, func(s *Sink, cur *Cursor) int {
				return cv.Table(s, cur)
			})
			if html != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", html, tt.want)
			}
		})
	}
}

func TestTable_ManyColumns(t *testing.T) {
	// 26 columns, the declared maximum
	md := "a|b|c|d|e|f|g|h|i|j|k|l|m|n|o|p|q|r|s|t|u|v|w|x|y|z\n" +
		"---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---|---\n" +
		"1|2|3|4|5|6|7|8|9|10|11|12|13|14|15|16|17|18|19|20|21|22|23|24|25|26"

	cv := New(Options{})
	if !cv.IsTable(NewCursor([]byte(md))) {
		t.Fatal("expected a table")
	}
	html, _ := render(t, md, func(s *Sink, cur *Cursor) int {
		return cv.Table(s, cur)
	})

	for _, cell := range []string{"  <th>a</th>\r\n", "  <th>z</th>\r\n", "  <td>1</td>\r\n", "  <td>26</td>\r\n"} {
		if !strings.Contains(html, cell) {
			t.Errorf("output missing %q", cell)
		}
	}
}

func TestTableCellCount(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"a|", 1},
		{"a|b", 2},
		{"a|b|c\n", 3},
		{`a\|b`, 0}, // escaped pipe is not a cell divider
		{"no pipes here", 0},
		{"| leading\n", 2},
	}

	for _, tt := range tests {
		if got := tableCellCount([]byte(tt.line), 0); got != tt.want {
			t.Errorf("tableCellCount(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}
