// Package smartsource provides a video source that picks a decoding backend
// from the file type and what was compiled in.
package smartsource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/videobarcode/pkg/adapters/ffmpegsource"
	"github.com/user/videobarcode/pkg/adapters/gocvsource"
	"github.com/user/videobarcode/pkg/adapters/logger"
	"github.com/user/videobarcode/pkg/adapters/mp4probe"
	"github.com/user/videobarcode/pkg/adapters/mpegsource"
	"github.com/user/videobarcode/pkg/adapters/vidiosource"
	"github.com/user/videobarcode/pkg/ports"
)

// Backend names a decoding backend.
type Backend string

const (
	// BackendAuto selects a backend from the file extension.
	BackendAuto Backend = "auto"
	// BackendFFmpeg decodes single frames with the ffmpeg CLI.
	BackendFFmpeg Backend = "ffmpeg"
	// BackendVidio streams frames through Vidio.
	BackendVidio Backend = "vidio"
	// BackendMPEG decodes MPEG-1 in pure Go.
	BackendMPEG Backend = "mpeg"
	// BackendGoCV uses OpenCV (requires -tags gocv).
	BackendGoCV Backend = "gocv"
)

// Backends lists the accepted backend names.
var Backends = []Backend{BackendAuto, BackendFFmpeg, BackendVidio, BackendMPEG, BackendGoCV}

var (
	// ErrUnknownBackend is returned for an unrecognised backend name.
	ErrUnknownBackend = errors.New("smartsource: unknown backend")
	// ErrNotRegularFile is returned when the path is a directory or device.
	ErrNotRegularFile = errors.New("smartsource: not a regular file")
)

// ParseBackend parses a backend name. The empty string means auto.
func ParseBackend(s string) (Backend, error) {
	if s == "" {
		return BackendAuto, nil
	}
	b := Backend(strings.ToLower(s))
	for _, known := range Backends {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// Options configures the smart source.
type Options struct {
	// Backend forces a backend. Empty or BackendAuto selects one per file.
	Backend Backend
	// Logger receives backend selection details. Defaults to a no-op logger.
	Logger ports.Logger
}

// Source dispatches Open to the selected backend.
type Source struct {
	backend Backend
	sources map[Backend]ports.VideoSource
	probe   func(path string) (mp4probe.Info, error)
	hasGoCV bool
	logger  ports.Logger
}

// New creates a Source with all compiled-in backends.
func New(opts Options) *Source {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoop()
	}
	backend := opts.Backend
	if backend == "" {
		backend = BackendAuto
	}

	return &Source{
		backend: backend,
		sources: map[Backend]ports.VideoSource{
			BackendFFmpeg: ffmpegsource.New(),
			BackendVidio:  vidiosource.New(),
			BackendMPEG:   mpegsource.New(),
			BackendGoCV:   gocvsource.New(),
		},
		probe:   mp4probe.ProbeFile,
		hasGoCV: gocvsource.Available,
		logger:  log.WithComponent("source"),
	}
}

// Select returns the backend used for path.
//
// The selection flow for BackendAuto:
//   - MPEG-1 program streams: pure Go decoder
//   - Everything else: OpenCV when compiled in, otherwise ffmpeg
func (s *Source) Select(path string) Backend {
	if s.backend != BackendAuto {
		return s.backend
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mpg", ".mpeg", ".m1v":
		return BackendMPEG
	}
	if s.hasGoCV {
		return BackendGoCV
	}
	return BackendFFmpeg
}

// Open implements ports.VideoSource.
//
// A missing path fails before any decoder starts. For MP4/MOV containers the
// sample count from the container replaces the backend's frame count.
func (s *Source) Open(ctx context.Context, path string) (ports.VideoHandle, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	backend := s.Select(path)
	src, ok := s.sources[backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	s.logger.Debug("Using %s backend for %s", backend, path)

	inner, err := src.Open(ctx, path)
	if err != nil {
		return nil, err
	}

	h := &Handle{VideoHandle: inner, backend: backend, count: inner.FrameCount()}
	if mp4probe.IsContainer(path) {
		info, err := s.probe(path)
		switch {
		case err != nil:
			s.logger.Debug("Container probe failed, using %s frame count: %s", backend, err)
		case info.Samples > 0:
			if float64(info.Samples) != h.count {
				s.logger.Debug("Container reports %d frames, %s reported %.2f", info.Samples, backend, h.count)
			}
			h.count = float64(info.Samples)
			h.container = &info
		}
	}
	return h, nil
}

// Inspect opens path and reports its metadata without decoding any frame.
func (s *Source) Inspect(ctx context.Context, path string) (ports.VideoInfo, error) {
	h, err := s.Open(ctx, path)
	if err != nil {
		return ports.VideoInfo{}, err
	}
	defer h.Close()

	return h.(*Handle).Describe(), nil
}

// Handle wraps a backend handle with the resolved frame count.
type Handle struct {
	ports.VideoHandle
	backend   Backend
	count     float64
	container *mp4probe.Info
}

// FrameCount implements ports.VideoHandle.
func (h *Handle) FrameCount() float64 {
	return h.count
}

// Backend returns the backend serving this handle.
func (h *Handle) Backend() Backend {
	return h.backend
}

// Describe implements ports.Describer, filling gaps in the backend's
// metadata from the container.
func (h *Handle) Describe() ports.VideoInfo {
	info := ports.VideoInfo{Backend: string(h.backend)}
	if d, ok := h.VideoHandle.(ports.Describer); ok {
		info = d.Describe()
	}
	info.FrameCount = h.count

	if c := h.container; c != nil {
		if info.Codec == "" {
			info.Codec = string(c.Codec)
		}
		if info.Width == 0 || info.Height == 0 {
			info.Width, info.Height = c.Width, c.Height
		}
		if info.FPS == 0 {
			info.FPS = c.FPS()
		}
	}
	return info
}

// Ensure implementations
var (
	_ ports.VideoSource = (*Source)(nil)
	_ ports.VideoHandle = (*Handle)(nil)
	_ ports.Describer   = (*Handle)(nil)
)
