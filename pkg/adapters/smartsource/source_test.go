package smartsource

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/videobarcode/pkg/adapters/logger"
	"github.com/user/videobarcode/pkg/adapters/mp4probe"
	"github.com/user/videobarcode/pkg/mocks"
	"github.com/user/videobarcode/pkg/ports"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input   string
		want    Backend
		wantErr bool
	}{
		{"", BackendAuto, false},
		{"auto", BackendAuto, false},
		{"ffmpeg", BackendFFmpeg, false},
		{"FFmpeg", BackendFFmpeg, false},
		{"vidio", BackendVidio, false},
		{"mpeg", BackendMPEG, false},
		{"gocv", BackendGoCV, false},
		{"opencv", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBackend(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownBackend) {
				t.Errorf("ParseBackend(%q) error = %v, want ErrUnknownBackend", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBackend(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBackend(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		backend Backend
		hasGoCV bool
		path    string
		want    Backend
	}{
		{"mpeg by extension", BackendAuto, false, "clip.MPG", BackendMPEG},
		{"m1v by extension", BackendAuto, true, "clip.m1v", BackendMPEG},
		{"mp4 without gocv", BackendAuto, false, "clip.mp4", BackendFFmpeg},
		{"mp4 with gocv", BackendAuto, true, "clip.mp4", BackendGoCV},
		{"forced backend", BackendVidio, true, "clip.mpg", BackendVidio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{Backend: tt.backend})
			s.hasGoCV = tt.hasGoCV
			if got := s.Select(tt.path); got != tt.want {
				t.Errorf("Select(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// newTestSource routes every backend to one mock source.
func newTestSource(t *testing.T, videos *mocks.VideoSource) *Source {
	t.Helper()
	s := New(Options{Backend: BackendFFmpeg, Logger: logger.NewNoop()})
	s.sources = map[Backend]ports.VideoSource{BackendFFmpeg: videos}
	s.probe = func(path string) (mp4probe.Info, error) {
		return mp4probe.Info{}, errors.New("no probe configured")
	}
	return s
}

func touch(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestOpen_MissingFileSkipsDecoder(t *testing.T) {
	videos := mocks.NewVideoSource()
	opened := false
	videos.OpenFunc = func(ctx context.Context, path string) (ports.VideoHandle, error) {
		opened = true
		return nil, errors.New("unexpected open")
	}
	s := newTestSource(t, videos)

	_, err := s.Open(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
	if opened {
		t.Error("decoder should not be started for a missing file")
	}
}

func TestOpen_Directory(t *testing.T) {
	s := newTestSource(t, mocks.NewVideoSource())

	_, err := s.Open(context.Background(), t.TempDir())
	if !errors.Is(err, ErrNotRegularFile) {
		t.Fatalf("expected ErrNotRegularFile, got %v", err)
	}
}

func TestOpen_UsesBackendCount(t *testing.T) {
	path := touch(t, "clip.webm")
	videos := mocks.NewVideoSource()
	videos.AddVideo(path, &mocks.Video{Frames: 42.5, Width: 4, Height: 4})
	s := newTestSource(t, videos)
	s.probe = func(string) (mp4probe.Info, error) {
		t.Error("probe should only run for MP4 containers")
		return mp4probe.Info{}, nil
	}

	h, err := s.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer h.Close()

	if got := h.FrameCount(); got != 42.5 {
		t.Errorf("FrameCount = %v, want 42.5", got)
	}
	if got := h.(*Handle).Backend(); got != BackendFFmpeg {
		t.Errorf("Backend = %q", got)
	}
}

func TestOpen_ContainerCountWins(t *testing.T) {
	path := touch(t, "clip.mp4")
	videos := mocks.NewVideoSource()
	videos.AddVideo(path, &mocks.Video{Frames: 99.97, Width: 4, Height: 4})
	s := newTestSource(t, videos)
	s.probe = func(string) (mp4probe.Info, error) {
		return mp4probe.Info{
			Codec:     mp4probe.CodecH264,
			Width:     640,
			Height:    360,
			Samples:   100,
			Timescale: 12800,
			Duration:  51200,
		}, nil
	}

	info, err := s.Inspect(context.Background(), path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if info.FrameCount != 100 {
		t.Errorf("FrameCount = %v, want 100", info.FrameCount)
	}
	if info.Backend != string(BackendFFmpeg) {
		t.Errorf("Backend = %q", info.Backend)
	}
	if info.Codec != string(mp4probe.CodecH264) {
		t.Errorf("Codec = %q", info.Codec)
	}
	if info.Width != 640 || info.Height != 360 {
		t.Errorf("size = %dx%d, want 640x360", info.Width, info.Height)
	}
	if info.FPS != 25 {
		t.Errorf("FPS = %v, want 25", info.FPS)
	}
	if h := videos.Handles[0]; !h.Closed {
		t.Error("Inspect should close the handle")
	}
}

func TestOpen_ProbeFailureKeepsBackendCount(t *testing.T) {
	path := touch(t, "clip.mov")
	videos := mocks.NewVideoSource()
	videos.AddVideo(path, &mocks.Video{Frames: 30, Width: 4, Height: 4})
	s := newTestSource(t, videos)

	h, err := s.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer h.Close()

	if got := h.FrameCount(); got != 30 {
		t.Errorf("FrameCount = %v, want 30", got)
	}
}
