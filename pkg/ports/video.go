// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
	"errors"
	"image"
)

// ErrEndOfStream is returned by VideoHandle.Read when no frame can be
// decoded at the current position.
var ErrEndOfStream = errors.New("end of stream")

// VideoSource opens videos for frame-accurate reading.
type VideoSource interface {
	// Open opens the video at path.
	// The caller owns the returned handle and must Close it.
	Open(ctx context.Context, path string) (VideoHandle, error)
}

// VideoHandle is an opened, seekable video stream.
// A handle is not safe for concurrent use.
type VideoHandle interface {
	// FrameCount reports the total number of frames.
	// Container metadata may be estimated, so the count can be fractional.
	FrameCount() float64

	// Seek positions the read cursor at the given zero-based frame index.
	Seek(index int) error

	// Read decodes the frame at the current position and advances the cursor.
	Read() (image.Image, error)

	// Close releases the decoder and the underlying file.
	Close() error
}

// VideoInfo describes an opened video for reporting.
type VideoInfo struct {
	Backend    string
	Codec      string
	Width      int
	Height     int
	FPS        float64
	FrameCount float64
}

// Describer is implemented by handles that can report stream metadata.
type Describer interface {
	Describe() VideoInfo
}
