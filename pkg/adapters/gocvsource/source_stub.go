//go:build !gocv

package gocvsource

import (
	"context"

	"github.com/user/videobarcode/pkg/ports"
)

// Available reports whether OpenCV support is compiled in.
const Available = false

// Source is a placeholder that always fails to open.
type Source struct{}

// New creates a new Source.
func New() *Source {
	return &Source{}
}

// Open always returns ErrUnavailable.
func (s *Source) Open(ctx context.Context, path string) (ports.VideoHandle, error) {
	return nil, ErrUnavailable
}

var _ ports.VideoSource = (*Source)(nil)
