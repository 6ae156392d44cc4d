package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/videobarcode/pkg/mocks"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.ImageOps{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SavePlanJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.ImageOps{})

	data := []byte(`[{"position": 10, "index": 10}]`)
	if err := sink.SavePlanJSON(data); err != nil {
		t.Fatalf("SavePlanJSON failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "plan.json")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveSlice(t *testing.T) {
	fs := mocks.NewFileSystem()
	var encodedAs string
	ops := &mocks.ImageOps{
		EncodeFunc: func(img image.Image, filename string) ([]byte, error) {
			encodedAs = filename
			return []byte{0x89, 0x50, 0x4E, 0x47}, nil // PNG header
		},
	}
	sink := New(testBaseDir, fs, ops)

	img := image.NewRGBA(image.Rect(0, 0, 1, 360))
	if err := sink.SaveSlice(5, img); err != nil {
		t.Fatalf("SaveSlice failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "slices", "slice-0005.png")
	if _, ok := fs.GetFile(expectedPath); !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
	if filepath.Ext(encodedAs) != ".png" {
		t.Errorf("expected PNG encoding, got %q", encodedAs)
	}
}

func TestSink_SaveUnblurred(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.ImageOps{})

	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if err := sink.SaveUnblurred(img); err != nil {
		t.Fatalf("SaveUnblurred failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "unblurred.png")
	if _, ok := fs.GetFile(expectedPath); !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}

func TestSink_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	encodeErr := errors.New("encode failed")
	ops := &mocks.ImageOps{
		EncodeFunc: func(image.Image, string) ([]byte, error) { return nil, encodeErr },
	}
	sink := New(testBaseDir, fs, ops)

	if err := sink.SaveUnblurred(image.NewRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, encodeErr) {
		t.Errorf("expected encode error, got %v", err)
	}
	if len(fs.Files()) != 0 {
		t.Error("expected no files after encode failure")
	}
}

func TestSink_MultipleSlices(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.ImageOps{})

	for i := 0; i < 10; i++ {
		if err := sink.SaveSlice(i, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
			t.Fatalf("SaveSlice %d failed: %v", i, err)
		}
	}

	if got := len(fs.Files()); got != 10 {
		t.Errorf("expected 10 files, got %d", got)
	}
}
