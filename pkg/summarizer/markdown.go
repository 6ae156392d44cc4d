package summarizer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxListedSamples caps the sampled frame list; longer runs are elided in
// the middle.
const maxListedSamples = 50

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Barcode Summary\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	sb.WriteString("## Input\n\n")
	writeTable(&sb, [][2]string{
		{"Source", "`" + s.Input.Source + "`"},
		{"Backend", orDash(s.Input.Backend)},
		{"Total frames", formatCount(s.Input.TotalFrames)},
		{"Sampling interval", fmt.Sprintf("%.3f frames", s.Input.Interval)},
	})

	sb.WriteString("## Barcode\n\n")
	height := strconv.Itoa(s.Settings.SliceHeight)
	if s.Settings.HeightInferred {
		height += " (inferred)"
	}
	blur := "none"
	if s.Settings.Blur > 0 {
		blur = fmt.Sprintf("%d (%dx%d kernel)", s.Settings.Blur, s.Settings.Blur, s.Settings.Blur)
	}
	writeTable(&sb, [][2]string{
		{"Frames", strconv.Itoa(s.Settings.Frames)},
		{"Slice width", fmt.Sprintf("%d px", s.Settings.SliceWidth)},
		{"Slice height", height + " px"},
		{"Blur", blur},
	})

	sb.WriteString("## Output\n\n")
	writeTable(&sb, [][2]string{
		{"File", "`" + s.Output.Path + "`"},
		{"Format", strings.ToUpper(orDash(s.Output.Format))},
		{"Image size", fmt.Sprintf("%dx%d", s.Output.Width, s.Output.Height)},
		{"File size", formatBytes(s.Output.FileSize)},
		{"Elapsed", s.Elapsed.Round(time.Millisecond).String()},
	})

	if len(s.Samples) > 0 {
		sb.WriteString("## Sampled Frames\n\n")
		sb.WriteString(formatSamples(s.Samples))
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeTable(sb *strings.Builder, rows [][2]string) {
	sb.WriteString("| Item | Value |\n")
	sb.WriteString("|------|-------|\n")
	for _, r := range rows {
		fmt.Fprintf(sb, "| %s | %s |\n", r[0], r[1])
	}
	sb.WriteString("\n")
}

func formatSamples(indices []int) string {
	if len(indices) <= maxListedSamples {
		return joinInts(indices)
	}
	half := maxListedSamples / 2
	omitted := len(indices) - 2*half
	return fmt.Sprintf("%s, ... (%d more) ..., %s",
		joinInts(indices[:half]), omitted, joinInts(indices[len(indices)-half:]))
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// formatCount prints whole counts without decimals.
func formatCount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatBytes(n int64) string {
	const unit = 1024
	switch {
	case n >= unit*unit:
		return fmt.Sprintf("%.2f MB", float64(n)/(unit*unit))
	case n >= unit:
		return fmt.Sprintf("%.2f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var _ Formatter = (*MarkdownFormatter)(nil)
