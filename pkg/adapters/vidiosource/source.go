// Package vidiosource implements ports.VideoSource with Vidio, which streams
// raw RGBA frames from an ffmpeg subprocess.
//
// The stream only moves forward. Sampled indices are strictly increasing, so
// Seek skips ahead by decoding and discarding frames; seeking backwards fails.
package vidiosource

import (
	"context"
	"fmt"
	"image"

	vidio "github.com/AlexEidt/Vidio"
	"github.com/user/videobarcode/pkg/ports"
)

// Backend is the backend name reported by Describe.
const Backend = "vidio"

// stream is the subset of *vidio.Video used by Handle.
type stream interface {
	Frames() int
	Width() int
	Height() int
	FPS() float64
	Codec() string
	Read() bool
	FrameBuffer() []byte
	Close()
}

// Source opens videos with Vidio.
type Source struct {
	open func(path string) (stream, error)
}

// New creates a new Source.
func New() *Source {
	return &Source{
		open: func(path string) (stream, error) {
			return vidio.NewVideo(path)
		},
	}
}

// Open implements ports.VideoSource.
func (s *Source) Open(ctx context.Context, path string) (ports.VideoHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := s.open(path)
	if err != nil {
		return nil, fmt.Errorf("vidio: %w", err)
	}
	return &Handle{video: v}, nil
}

// Handle is a forward-only video reader. It is not safe for concurrent use.
type Handle struct {
	video  stream
	next   int // index of the frame the next video.Read decodes
	target int
	closed bool
}

// FrameCount implements ports.VideoHandle.
func (h *Handle) FrameCount() float64 {
	return float64(h.video.Frames())
}

// Describe implements ports.Describer.
func (h *Handle) Describe() ports.VideoInfo {
	return ports.VideoInfo{
		Backend:    Backend,
		Codec:      h.video.Codec(),
		Width:      h.video.Width(),
		Height:     h.video.Height(),
		FPS:        h.video.FPS(),
		FrameCount: h.FrameCount(),
	}
}

// Seek implements ports.VideoHandle. Only forward seeks are supported.
func (h *Handle) Seek(index int) error {
	if h.closed {
		return fmt.Errorf("handle is closed")
	}
	if index < h.next {
		return fmt.Errorf("cannot seek backwards from frame %d to %d", h.next, index)
	}
	h.target = index
	return nil
}

// Read implements ports.VideoHandle.
func (h *Handle) Read() (image.Image, error) {
	if h.closed {
		return nil, fmt.Errorf("handle is closed")
	}

	for h.next < h.target {
		if !h.video.Read() {
			return nil, ports.ErrEndOfStream
		}
		h.next++
	}
	if !h.video.Read() {
		return nil, ports.ErrEndOfStream
	}
	h.next++
	h.target = h.next

	w, hgt := h.video.Width(), h.video.Height()
	buf := h.video.FrameBuffer()
	if len(buf) < w*hgt*4 {
		return nil, fmt.Errorf("short frame buffer: %d bytes for %dx%d", len(buf), w, hgt)
	}

	// The frame buffer is reused by the next Read.
	img := image.NewRGBA(image.Rect(0, 0, w, hgt))
	copy(img.Pix, buf)
	return img, nil
}

// Close implements ports.VideoHandle.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.video.Close()
	return nil
}

// Ensure implementations
var (
	_ ports.VideoSource = (*Source)(nil)
	_ ports.VideoHandle = (*Handle)(nil)
	_ ports.Describer   = (*Handle)(nil)
)
