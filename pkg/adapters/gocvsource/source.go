//go:build gocv

package gocvsource

import (
	"context"
	"fmt"
	"image"

	"github.com/user/videobarcode/pkg/ports"
	"gocv.io/x/gocv"
)

// Available reports whether OpenCV support is compiled in.
const Available = true

// Source opens videos with cv::VideoCapture.
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

	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("gocv: %w", err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("gocv: cannot open %s", path)
	}

	return &Handle{capture: vc, mat: gocv.NewMat()}, nil
}

// Handle wraps an opened VideoCapture. It is not safe for concurrent use.
type Handle struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
	closed  bool
}

// FrameCount implements ports.VideoHandle.
func (h *Handle) FrameCount() float64 {
	return h.capture.Get(gocv.VideoCaptureFrameCount)
}

// Describe implements ports.Describer.
func (h *Handle) Describe() ports.VideoInfo {
	return ports.VideoInfo{
		Backend:    Backend,
		Codec:      h.capture.CodecString(),
		Width:      int(h.capture.Get(gocv.VideoCaptureFrameWidth)),
		Height:     int(h.capture.Get(gocv.VideoCaptureFrameHeight)),
		FPS:        h.capture.Get(gocv.VideoCaptureFPS),
		FrameCount: h.FrameCount(),
	}
}

// Seek implements ports.VideoHandle.
func (h *Handle) Seek(index int) error {
	if h.closed {
		return fmt.Errorf("handle is closed")
	}
	h.capture.Set(gocv.VideoCapturePosFrames, float64(index))
	return nil
}

// Read implements ports.VideoHandle.
func (h *Handle) Read() (image.Image, error) {
	if h.closed {
		return nil, fmt.Errorf("handle is closed")
	}
	if ok := h.capture.Read(&h.mat); !ok || h.mat.Empty() {
		return nil, ports.ErrEndOfStream
	}
	img, err := h.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	return img, nil
}

// Close implements ports.VideoHandle.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	if err := h.mat.Close(); err != nil {
		h.capture.Close()
		return err
	}
	return h.capture.Close()
}

// Ensure implementations
var (
	_ ports.VideoSource = (*Source)(nil)
	_ ports.VideoHandle = (*Handle)(nil)
	_ ports.Describer   = (*Handle)(nil)
)
