package summarizer

import (
	"fmt"
	"strings"

	"github.com/user/videobarcode/pkg/ports"
)

// Writer renders a Summary with its Formatter and stores it through a
// ports.FileSystem.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem
}

// NewWriter creates a new Writer.
func NewWriter(formatter Formatter, fs ports.FileSystem) *Writer {
	return &Writer{formatter: formatter, fs: fs}
}

// Write stores the formatted summary at path, newline-terminated.
func (w *Writer) Write(path string, summary *Summary) error {
	content := w.formatter.Format(summary)
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := w.fs.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}
