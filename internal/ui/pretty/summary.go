package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/mdpress/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatBytes renders a byte count in a compact human form.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files converted (4.2 KiB -> 11.7 KiB) in 12ms".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No Markdown files found") + "\n"
	}

	fileWord := wordFiles
	if stats.FilesConverted == 1 {
		fileWord = wordFile
	}

	msg := s.Success.Render(fmt.Sprintf("%d %s converted", stats.FilesConverted, fileWord)) +
		s.Dim.Render(fmt.Sprintf(" (%s -> %s)", FormatBytes(stats.BytesIn), FormatBytes(stats.BytesOut))) +
		s.Dim.Render(fmt.Sprintf(" in %s", stats.Duration.Round(time.Microsecond)))

	if stats.FilesErrored > 0 {
		msg += ", " + s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored))
	}

	return msg + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files converted:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesConverted)) + "\n")

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files failed:      " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Markdown read:     " +
		s.SummaryValue.Render(FormatBytes(stats.BytesIn)) + "\n")
	builder.WriteString("  HTML written:      " +
		s.SummaryValue.Render(FormatBytes(stats.BytesOut)) + "\n")
	builder.WriteString("  Conversion time:   " +
		s.SummaryValue.Render(stats.Duration.Round(time.Microsecond).String()) + "\n")

	builder.WriteString("\n")

	// Overall status
	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Conversion finished with errors"))
	} else {
		builder.WriteString(s.Success.Render("Conversion succeeded"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileLine formats a single file outcome for verbose output.
func (s *Styles) FormatFileLine(outcome runner.FileOutcome) string {
	if outcome.Error != nil {
		return s.FilePath.Render(outcome.Path) + ": " +
			s.Error.Render(outcome.Error.Error()) + "\n"
	}

	line := s.FilePath.Render(outcome.Path)
	if outcome.OutPath != "" {
		line += s.Dim.Render(" -> ") + s.OutPath.Render(outcome.OutPath)
	}
	line += s.Dim.Render(fmt.Sprintf(" (%s)", FormatBytes(int64(outcome.BytesOut))))
	return line + "\n"
}
