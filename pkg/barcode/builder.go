// Package barcode builds "barcode" images from evenly spaced video frames.
//
// A barcode is the horizontal concatenation of resized frame slices taken at
// interval/2 + k*interval for k in [0, frames), where interval is the total
// frame count divided by the number of slices. Any failure aborts the run;
// there is no partial output.
package barcode

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/user/videobarcode/pkg/pipeline"
	"github.com/user/videobarcode/pkg/ports"
)

// Options configures one barcode run.
type Options struct {
	Frames int // Number of slices (required, >= 1)
	Blur   int // Blur amount, 0 disables blurring
	Width  int // Slice width in pixels (default: 1)
	Height int // Slice height in pixels, 0 infers it from the first sampled frame
}

// Validate checks the options that can be checked without opening the video.
func (o Options) Validate() error {
	if o.Frames < 1 {
		return invalidArgument("nFrames must be an integer greater than zero (got %d)", o.Frames)
	}
	if o.Width < 1 {
		return invalidArgument("width must be at least 1 pixel (got %d)", o.Width)
	}
	if o.Height < 0 {
		return invalidArgument("height must not be negative (got %d)", o.Height)
	}
	if o.Blur < 0 {
		return invalidArgument("blur must not be negative (got %d)", o.Blur)
	}
	return nil
}

// Builder samples frames from a video and assembles them into a barcode.
type Builder struct {
	source   ports.VideoSource
	ops      ports.ImageOps
	progress ports.ProgressObserver
	sink     ports.DebugSink
	logger   ports.Logger
	now      func() time.Time
}

// New creates a new Builder.
func New(
	source ports.VideoSource,
	ops ports.ImageOps,
	progress ports.ProgressObserver,
	sink ports.DebugSink,
	logger ports.Logger,
) *Builder {
	return &Builder{
		source:   source,
		ops:      ops,
		progress: progress,
		sink:     sink,
		logger:   logger.WithComponent("barcode"),
		now:      time.Now,
	}
}

// MakeBarcode builds the barcode for the video at source.
//
// Errors match ErrNotFound when the video cannot be opened, ErrInvalidArgument
// when opts are rejected, and ErrDecode (as a *DecodeError) when a sampled
// frame cannot be decoded. The video is released on every path.
func (b *Builder) MakeBarcode(ctx context.Context, source string, opts Options) (image.Image, error) {
	result, err := b.build(ctx, source, opts)
	if err != nil {
		return nil, err
	}
	return result.Image, nil
}

// Execute implements pipeline.Stage.
func (b *Builder) Execute(ctx context.Context, input pipeline.BarcodeInput) (pipeline.BarcodeResult, error) {
	return b.build(ctx, input.Source, Options{
		Frames: input.Frames,
		Blur:   input.Blur,
		Width:  input.Width,
		Height: input.Height,
	})
}

func (b *Builder) build(ctx context.Context, source string, opts Options) (pipeline.BarcodeResult, error) {
	if err := opts.Validate(); err != nil {
		return pipeline.BarcodeResult{}, err
	}

	start := b.now()

	b.logger.Debug("Opening %s", source)
	handle, err := b.source.Open(ctx, source)
	if err != nil {
		return pipeline.BarcodeResult{}, fmt.Errorf("%w: %s: %w", ErrNotFound, source, err)
	}

	result, err := b.assemble(ctx, handle, source, opts, start)
	if err != nil {
		return pipeline.BarcodeResult{}, err
	}

	if opts.Blur != 0 {
		if b.sink.Enabled() {
			if err := b.sink.SaveUnblurred(result.Image); err != nil {
				b.logger.Warn("Failed to save debug output: %s", err)
			}
		}
		b.progress.OnBlur(opts.Blur)
		b.logger.Debug("Applying %dx%d blur kernel", opts.Blur, opts.Blur)
		result.Image = b.ops.Convolve(result.Image, BlurKernel(opts.Blur))
	}

	b.progress.OnFinish(b.now().Sub(start))
	return result, nil
}

// assemble reads every sampled frame and concatenates the slices.
// The handle is closed before assemble returns.
func (b *Builder) assemble(
	ctx context.Context,
	handle ports.VideoHandle,
	source string,
	opts Options,
	start time.Time,
) (pipeline.BarcodeResult, error) {
	defer func() {
		if err := handle.Close(); err != nil {
			b.logger.Warn("Failed to release video: %s", err)
		}
	}()

	total := handle.FrameCount()
	if err := ValidateFrames(opts.Frames, total); err != nil {
		return pipeline.BarcodeResult{}, err
	}

	positions := SamplePositions(total, opts.Frames)
	samples := make([]pipeline.Sample, len(positions))
	for k, pos := range positions {
		samples[k] = pipeline.Sample{Position: pos, Index: FrameIndex(pos)}
	}
	b.logger.Debug("Sampling %d of %s frames every %.3f frames", opts.Frames, formatCount(total), Interval(total, opts.Frames))

	if b.sink.Enabled() {
		if data, err := json.MarshalIndent(samples, "", "  "); err == nil {
			if err := b.sink.SavePlanJSON(data); err != nil {
				b.logger.Warn("Failed to save debug output: %s", err)
			}
		}
	}

	b.progress.OnStart(source, opts.Frames, total)

	height := opts.Height
	slices := make([]image.Image, 0, len(samples))
	for k, sample := range samples {
		if err := ctx.Err(); err != nil {
			return pipeline.BarcodeResult{}, err
		}

		frame, err := b.readFrame(handle, sample.Index)
		if err != nil {
			return pipeline.BarcodeResult{}, &DecodeError{Index: sample.Index, Total: total, Err: err}
		}

		// The first sampled frame doubles as the height probe.
		if height == 0 {
			height = frame.Bounds().Dy()
			b.logger.Debug("Inferred slice height %d from frame %d", height, sample.Index)
		}

		slice := b.ops.Resize(frame, opts.Width, height)
		if b.sink.Enabled() {
			if err := b.sink.SaveSlice(k, slice); err != nil {
				b.logger.Warn("Failed to save debug output: %s", err)
			}
		}
		slices = append(slices, slice)

		b.progress.OnFrame(k+1, len(samples), b.now().Sub(start))
	}

	return pipeline.BarcodeResult{
		Image:       b.ops.ConcatHorizontal(slices),
		TotalFrames: total,
		Interval:    Interval(total, opts.Frames),
		Width:       opts.Width,
		Height:      height,
		Samples:     samples,
	}, nil
}

func (b *Builder) readFrame(handle ports.VideoHandle, index int) (image.Image, error) {
	if err := handle.Seek(index); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}
	frame, err := handle.Read()
	if err != nil {
		return nil, err
	}
	if frame == nil || frame.Bounds().Empty() {
		return nil, ports.ErrEndOfStream
	}
	return frame, nil
}

// Ensure Builder implements pipeline.Stage
var _ pipeline.Stage[pipeline.BarcodeInput, pipeline.BarcodeResult] = (*Builder)(nil)
