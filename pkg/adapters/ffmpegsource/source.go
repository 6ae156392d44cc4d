// Package ffmpegsource implements ports.VideoSource on top of the ffmpeg and
// ffprobe command line tools.
//
// Frame counts come from ffprobe. Each Read runs one ffmpeg process that seeks
// the input to half a frame before the requested frame and pipes the next
// decoded frame back as a PNG. ffmpeg's input seek decodes from the preceding
// keyframe and drops frames up to the timestamp, so it stays frame-accurate.
// Streams without a known frame rate fall back to a trim filter.
package ffmpegsource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	ffmpeg "github.com/u2takey/ffmpeg-go"
	"github.com/user/videobarcode/pkg/ports"
)

func init() {
	ffmpeg.LogCompiledCommand = false
}

// Backend is the backend name reported by Describe.
const Backend = "ffmpeg"

// Source opens videos through ffprobe/ffmpeg.
type Source struct {
	probe func(path string) (string, error)
}

// New creates a new Source.
func New() *Source {
	return &Source{
		probe: func(path string) (string, error) {
			return ffmpeg.Probe(path)
		},
	}
}

// Open probes the video at path and returns a handle positioned at frame 0.
func (s *Source) Open(ctx context.Context, path string) (ports.VideoHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := s.probe(path)
	if err != nil {
		return nil, fmt.Errorf("ffprobe: %w", err)
	}

	info, err := ParseProbe(out)
	if err != nil {
		return nil, err
	}

	return &Handle{path: path, info: info}, nil
}

// probeOutput is the subset of ffprobe's JSON output used here.
type probeOutput struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		CodecName    string `json:"codec_name"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		NbFrames     string `json:"nb_frames"`
		AvgFrameRate string `json:"avg_frame_rate"`
		RFrameRate   string `json:"r_frame_rate"`
		Duration     string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ParseProbe extracts video metadata from ffprobe JSON output.
//
// The frame count is the stream's nb_frames when present, otherwise
// duration times the average frame rate, which may be fractional.
func ParseProbe(data string) (ports.VideoInfo, error) {
	var out probeOutput
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return ports.VideoInfo{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	for _, st := range out.Streams {
		if st.CodecType != "video" {
			continue
		}

		info := ports.VideoInfo{
			Backend: Backend,
			Codec:   st.CodecName,
			Width:   st.Width,
			Height:  st.Height,
			FPS:     parseRate(st.AvgFrameRate),
		}
		if info.FPS == 0 {
			info.FPS = parseRate(st.RFrameRate)
		}

		if n, err := strconv.ParseFloat(st.NbFrames, 64); err == nil && n > 0 {
			info.FrameCount = n
			return info, nil
		}

		duration := parseSeconds(st.Duration)
		if duration == 0 {
			duration = parseSeconds(out.Format.Duration)
		}
		info.FrameCount = duration * info.FPS
		return info, nil
	}

	return ports.VideoInfo{}, fmt.Errorf("no video stream found")
}

// parseRate parses an ffprobe rational such as "30000/1001".
func parseRate(s string) float64 {
	num, den, ok := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !ok {
		return n
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}

func parseSeconds(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Handle is an opened video. It is not safe for concurrent use.
type Handle struct {
	path   string
	info   ports.VideoInfo
	pos    int
	closed bool
}

// FrameCount implements ports.VideoHandle.
func (h *Handle) FrameCount() float64 {
	return h.info.FrameCount
}

// Describe implements ports.Describer.
func (h *Handle) Describe() ports.VideoInfo {
	return h.info
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

// Read decodes the frame at the current position.
// ErrEndOfStream is returned when ffmpeg produces no image.
func (h *Handle) Read() (image.Image, error) {
	if h.closed {
		return nil, fmt.Errorf("handle is closed")
	}

	var stdout, stderr bytes.Buffer
	err := frameStream(h.path, h.pos, h.info.FPS).
		WithOutput(&stdout).
		WithErrorOutput(&stderr).
		Run()
	if stdout.Len() == 0 {
		if err != nil {
			return nil, fmt.Errorf("%w: ffmpeg: %v: %s", ports.ErrEndOfStream, err, lastLine(stderr.String()))
		}
		return nil, ports.ErrEndOfStream
	}

	img, decErr := imaging.Decode(&stdout)
	if decErr != nil {
		return nil, fmt.Errorf("decode frame %d: %w", h.pos, decErr)
	}
	h.pos++
	return img, nil
}

// Close implements ports.VideoHandle. No process outlives a Read.
func (h *Handle) Close() error {
	h.closed = true
	return nil
}

// frameStream builds the ffmpeg invocation that emits frame index as a single
// PNG on stdout.
func frameStream(path string, index int, fps float64) *ffmpeg.Stream {
	out := ffmpeg.KwArgs{"vframes": 1, "format": "image2", "vcodec": "png"}
	if fps > 0 {
		input := ffmpeg.KwArgs{}
		if index > 0 {
			input["ss"] = strconv.FormatFloat((float64(index)-0.5)/fps, 'f', 6, 64)
		}
		return ffmpeg.Input(path, input).Output("pipe:", out)
	}
	return ffmpeg.Input(path).
		Filter("trim", ffmpeg.Args{}, ffmpeg.KwArgs{"start_frame": index}).
		Output("pipe:", out)
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Ensure implementations
var (
	_ ports.VideoSource = (*Source)(nil)
	_ ports.VideoHandle = (*Handle)(nil)
	_ ports.Describer   = (*Handle)(nil)
)
