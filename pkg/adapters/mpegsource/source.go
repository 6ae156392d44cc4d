// Package mpegsource implements ports.VideoSource for MPEG-1 program streams
// with the pure Go decoder from github.com/gen2brain/mpeg.
package mpegsource

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"
	"time"

	"github.com/gen2brain/mpeg"
	"github.com/user/videobarcode/pkg/ports"
)

// Backend is the backend name reported by Describe.
const Backend = "mpeg"

// Source opens MPEG-1 files.
type Source struct{}

// New creates a new Source.
func New() *Source {
	return &Source{}
}

// Open implements ports.VideoSource.
func (s *Source) Open(ctx context.Context, path string) (ports.VideoHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	m, err := mpeg.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mpeg: %w", err)
	}
	m.SetAudioEnabled(false)

	if m.Width() == 0 || m.Height() == 0 || m.Framerate() == 0 {
		f.Close()
		return nil, fmt.Errorf("mpeg: no video stream")
	}

	return &Handle{file: f, mpeg: m}, nil
}

// Handle is an opened MPEG-1 stream. It is not safe for concurrent use.
type Handle struct {
	file   *os.File
	mpeg   *mpeg.MPEG
	pos    int
	closed bool
}

// FrameCount estimates the frame count from the stream duration, so the
// result is usually fractional.
func (h *Handle) FrameCount() float64 {
	return h.mpeg.Duration().Seconds() * h.mpeg.Framerate()
}

// Describe implements ports.Describer.
func (h *Handle) Describe() ports.VideoInfo {
	return ports.VideoInfo{
		Backend:    Backend,
		Codec:      "mpeg1video",
		Width:      h.mpeg.Width(),
		Height:     h.mpeg.Height(),
		FPS:        h.mpeg.Framerate(),
		FrameCount: h.FrameCount(),
	}
}

// Seek implements ports.VideoHandle.
func (h *Handle) Seek(index int) error {
	if h.closed {
		return fmt.Errorf("handle is closed")
	}
	if index < 0 {
		return fmt.Errorf("negative frame index %d", index)
	}
	h.pos = index
	return nil
}

// Read implements ports.VideoHandle.
func (h *Handle) Read() (image.Image, error) {
	if h.closed {
		return nil, fmt.Errorf("handle is closed")
	}

	frame := h.mpeg.SeekFrame(FrameTime(h.pos, h.mpeg.Framerate()), true)
	if frame == nil {
		return nil, ports.ErrEndOfStream
	}
	h.pos++

	// The decoder reuses its planes, so the frame is copied out.
	src := frame.YCbCr()
	img := image.NewRGBA(image.Rect(0, 0, src.Rect.Dx(), src.Rect.Dy()))
	draw.Draw(img, img.Bounds(), src, src.Rect.Min, draw.Src)
	return img, nil
}

// Close implements ports.VideoHandle.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	return h.file.Close()
}

// FrameTime returns the seek target for frame index at fps.
// Exact seeking stops at the first frame at or after the target, so the
// target sits half a frame before the frame's presentation time.
func FrameTime(index int, fps float64) time.Duration {
	if index <= 0 || fps <= 0 {
		return 0
	}
	seconds := (float64(index) - 0.5) / fps
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// Ensure implementations
var (
	_ ports.VideoSource = (*Source)(nil)
	_ ports.VideoHandle = (*Handle)(nil)
	_ ports.Describer   = (*Handle)(nil)
)
