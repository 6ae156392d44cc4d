package summarizer

import (
	"errors"
	"testing"

	"github.com/user/videobarcode/pkg/mocks"
)

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string { return "summary of " + s.Input.Source }), fs)

	if err := w.Write("reports/summary.md", testSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile("reports/summary.md")
	if !ok {
		t.Fatal("expected summary file to be written")
	}
	if string(data) != "summary of movie.mp4\n" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	writeErr := errors.New("read-only")
	fs.WriteFileFunc = func(string, []byte) error { return writeErr }

	w := NewWriter(NewMarkdownFormatter(), fs)
	if err := w.Write("summary.md", testSummary()); !errors.Is(err, writeErr) {
		t.Errorf("expected write error, got %v", err)
	}
}
