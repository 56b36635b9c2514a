package pretty

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/mdpress/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, OUTPUT, SIZE, TIME
	minFileWidth     = 20
	minOutWidth      = 20
	sizeColumnWidth  = 10
	timeColumnWidth  = 10
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableFormatter formats conversion results as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// DetectTermWidth attempts to get the terminal width from the writer.
// Returns defaultTermWidth when the writer is not a terminal.
func DetectTermWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

type columnWidths struct {
	file int
	out  int
}

// FormatTable formats runner results as a styled table.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(result.Files)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, outcome := range result.Files {
		builder.WriteString(t.formatRow(outcome, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	return builder.String()
}

// calculateColumnWidths sizes the path columns to the widest entry, then
// shrinks them to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(files []runner.FileOutcome) columnWidths {
	widths := columnWidths{
		file: minFileWidth,
		out:  minOutWidth,
	}

	for _, outcome := range files {
		if len(outcome.Path) > widths.file {
			widths.file = len(outcome.Path)
		}
		if len(outcome.OutPath) > widths.out {
			widths.out = len(outcome.OutPath)
		}
	}

	totalWidth := widths.file + widths.out + sizeColumnWidth + timeColumnWidth +
		tablePadding*tableColumnCount
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		// Shrink the wider path column first.
		if widths.out >= widths.file {
			widths.out = max(minOutWidth, widths.out-excess)
		} else {
			widths.file = max(minFileWidth, widths.file-excess)
		}
	}

	return widths
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %*s  %*s",
		widths.file, "FILE",
		widths.out, "OUTPUT",
		sizeColumnWidth, "SIZE",
		timeColumnWidth, "TIME")
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a horizontal separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	width := widths.file + widths.out + sizeColumnWidth + timeColumnWidth +
		tablePadding*tableColumnCount
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, width))
}

// formatRow formats a single result row.
func (t *TableFormatter) formatRow(outcome runner.FileOutcome, widths columnWidths) string {
	if outcome.Error != nil {
		row := fmt.Sprintf(" %-*s  %s",
			widths.file, truncate(outcome.Path, widths.file),
			truncate(outcome.Error.Error(), widths.out+sizeColumnWidth+timeColumnWidth))
		return t.styles.TableErrorRow.Render(row)
	}

	out := outcome.OutPath
	if out == "" {
		out = "(stdout)"
	}

	return fmt.Sprintf(" %-*s  %-*s  %*s  %*s",
		widths.file, truncate(outcome.Path, widths.file),
		widths.out, truncate(out, widths.out),
		sizeColumnWidth, FormatBytes(int64(outcome.BytesOut)),
		timeColumnWidth, outcome.Duration.String())
}

// truncate shortens s to width, marking the cut with a leading ellipsis so
// the filename tail stays visible.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return "..." + s[len(s)-width+3:]
}
