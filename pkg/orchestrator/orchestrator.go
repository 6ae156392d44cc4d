// Package orchestrator coordinates the barcode and encode stages and writes
// the result.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/user/videobarcode/pkg/pipeline"
	"github.com/user/videobarcode/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input/Output
	Source     string
	OutputPath string

	// Barcode
	Frames int
	Blur   int
	Width  int
	Height int // 0 infers the height from the video

	// Backend is only reported in the result.
	Backend string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Width: 1,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	barcodeStage pipeline.Stage[pipeline.BarcodeInput, pipeline.BarcodeResult]
	encodeStage  pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs           ports.FileSystem
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new Orchestrator.
func New(
	barcodeStage pipeline.Stage[pipeline.BarcodeInput, pipeline.BarcodeResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		barcodeStage: barcodeStage,
		encodeStage:  encodeStage,
		fs:           fs,
		logger:       logger,
		now:          time.Now,
	}
}

// Run builds the barcode, encodes it and writes it to config.OutputPath.
// Nothing is written unless every step succeeds. Errors from the barcode
// stage are returned unwrapped so callers can classify them.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	start := o.now()

	// 1. Build barcode
	barcode, err := o.barcodeStage.Execute(ctx, pipeline.BarcodeInput{
		Source: config.Source,
		Frames: config.Frames,
		Blur:   config.Blur,
		Width:  config.Width,
		Height: config.Height,
	})
	if err != nil {
		return RunResult{}, err
	}

	// 2. Encode for the destination format
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Image:    barcode.Image,
		Filename: config.OutputPath,
	})
	if err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}

	// 3. Write output file
	if err := o.fs.WriteFile(config.OutputPath, encoded.Data); err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	o.logger.Debug("Visualization saved to %s", config.OutputPath)

	bounds := barcode.Image.Bounds()
	return RunResult{
		Source:      config.Source,
		OutputPath:  config.OutputPath,
		Backend:     config.Backend,
		Frames:      len(barcode.Samples),
		TotalFrames: barcode.TotalFrames,
		Interval:    barcode.Interval,
		Samples:     barcode.Samples,
		SliceWidth:  barcode.Width,
		SliceHeight: barcode.Height,
		Blur:        config.Blur,
		ImageWidth:  bounds.Dx(),
		ImageHeight: bounds.Dy(),
		Format:      encoded.Format,
		FileSize:    encoded.FileSize,
		Elapsed:     o.now().Sub(start),
	}, nil
}

// RunResult contains the results of a run for summary generation.
type RunResult struct {
	// Input/Output
	Source     string
	OutputPath string
	Backend    string

	// Sampling
	Frames      int
	TotalFrames float64
	Interval    float64
	Samples     []pipeline.Sample

	// Image
	SliceWidth  int
	SliceHeight int
	Blur        int
	ImageWidth  int
	ImageHeight int
	Format      string
	FileSize    int64

	Elapsed time.Duration
}
