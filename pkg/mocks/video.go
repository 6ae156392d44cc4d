package mocks

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/user/videobarcode/pkg/ports"
)

// FrameColor returns the solid colour used for frame index i of a Video.
// Colours differ between neighbouring frames so slices can be told apart.
func FrameColor(i int) color.RGBA {
	return color.RGBA{
		R: uint8(i * 7 % 256),
		G: uint8(i * 13 % 256),
		B: uint8(i * 29 % 256),
		A: 255,
	}
}

// Video is an in-memory synthetic video.
// Each frame is a solid Width x Height image filled with FrameColor(index).
type Video struct {
	Frames float64
	Width  int
	Height int

	// FailAt lists frame indices whose Read fails.
	FailAt map[int]error
}

// VideoSource is a mock implementation of ports.VideoSource.
type VideoSource struct {
	mu     sync.Mutex
	videos map[string]*Video

	OpenFunc func(ctx context.Context, path string) (ports.VideoHandle, error)

	// Handles records every handle returned by Open, in order.
	Handles []*VideoHandle
}

// NewVideoSource creates a new mock VideoSource.
func NewVideoSource() *VideoSource {
	return &VideoSource{
		videos: make(map[string]*Video),
	}
}

// AddVideo registers a synthetic video under path.
func (m *VideoSource) AddVideo(path string, v *Video) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.videos[path] = v
}

func (m *VideoSource) Open(ctx context.Context, path string) (ports.VideoHandle, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.videos[path]
	if !ok {
		return nil, fmt.Errorf("open %s: file does not exist", path)
	}
	h := &VideoHandle{video: v}
	m.Handles = append(m.Handles, h)
	return h, nil
}

var _ ports.VideoSource = (*VideoSource)(nil)

// VideoHandle is a mock implementation of ports.VideoHandle.
type VideoHandle struct {
	video    *Video
	position int

	// Reads records the index of every frame returned by Read.
	Reads  []int
	Seeks  []int
	Closed bool
}

func (h *VideoHandle) FrameCount() float64 {
	return h.video.Frames
}

func (h *VideoHandle) Seek(index int) error {
	if h.Closed {
		return errors.New("handle closed")
	}
	h.Seeks = append(h.Seeks, index)
	h.position = index
	return nil
}

func (h *VideoHandle) Read() (image.Image, error) {
	if h.Closed {
		return nil, errors.New("handle closed")
	}
	idx := h.position
	if err, ok := h.video.FailAt[idx]; ok {
		return nil, err
	}
	if float64(idx) >= h.video.Frames {
		return nil, ports.ErrEndOfStream
	}
	h.position++
	h.Reads = append(h.Reads, idx)

	img := image.NewRGBA(image.Rect(0, 0, h.video.Width, h.video.Height))
	c := FrameColor(idx)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img, nil
}

func (h *VideoHandle) Close() error {
	h.Closed = true
	return nil
}

var _ ports.VideoHandle = (*VideoHandle)(nil)
