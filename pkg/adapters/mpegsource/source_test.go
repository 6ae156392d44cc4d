package mpegsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFrameTime(t *testing.T) {
	tests := []struct {
		index int
		fps   float64
		want  time.Duration
	}{
		{0, 25, 0},
		{1, 25, 20 * time.Millisecond},
		{10, 25, 380 * time.Millisecond},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := FrameTime(tt.index, tt.fps); got != tt.want {
			t.Errorf("FrameTime(%d, %v) = %v, want %v", tt.index, tt.fps, got, tt.want)
		}
	}
}

func TestFrameTime_Monotonic(t *testing.T) {
	prev := FrameTime(0, 29.97)
	for i := 1; i < 1000; i++ {
		cur := FrameTime(i, 29.97)
		if cur <= prev {
			t.Fatalf("FrameTime(%d) = %v not after FrameTime(%d) = %v", i, cur, i-1, prev)
		}
		prev = cur
	}
}

func TestSource_OpenMissing(t *testing.T) {
	_, err := New().Open(context.Background(), filepath.Join(t.TempDir(), "missing.mpg"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSource_OpenTestdata(t *testing.T) {
	path := filepath.Join("testdata", "sample.mpg")
	if _, err := os.Stat(path); err != nil {
		t.Skip("testdata/sample.mpg not present")
	}

	h, err := New().Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer h.Close()

	if h.FrameCount() <= 0 {
		t.Errorf("expected positive frame count, got %v", h.FrameCount())
	}
	if err := h.Seek(0); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	img, err := h.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if img.Bounds().Empty() {
		t.Error("expected non-empty frame")
	}
}
