// Package summarizer provides summary generation for barcode runs.
package summarizer

import "time"

// Summary contains all data collected during one barcode run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time `yaml:"generated_at"`

	// Video that was sampled
	Input InputInfo `yaml:"input"`

	// Barcode settings as resolved for the run
	Settings Settings `yaml:"settings"`

	// Written image
	Output OutputInfo `yaml:"output"`

	// Frame indices read, in barcode order
	Samples []int `yaml:"samples,flow"`

	Elapsed time.Duration `yaml:"-"`
}

// InputInfo describes the sampled video.
type InputInfo struct {
	Source      string  `yaml:"source"`
	Backend     string  `yaml:"backend,omitempty"`
	TotalFrames float64 `yaml:"total_frames"`
	Interval    float64 `yaml:"interval"` // Frames between consecutive samples
}

// Settings contains the barcode configuration.
type Settings struct {
	Frames         int  `yaml:"frames"`
	SliceWidth     int  `yaml:"slice_width"`
	SliceHeight    int  `yaml:"slice_height"`
	HeightInferred bool `yaml:"height_inferred"`
	Blur           int  `yaml:"blur"` // 0 = no blur
}

// OutputInfo describes the written image.
type OutputInfo struct {
	Path     string `yaml:"path"`
	Format   string `yaml:"format"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	FileSize int64  `yaml:"file_size"`
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets input video information.
func (b *Builder) WithInput(source, backend string, totalFrames, interval float64) *Builder {
	b.summary.Input = InputInfo{
		Source:      source,
		Backend:     backend,
		TotalFrames: totalFrames,
		Interval:    interval,
	}
	return b
}

// WithSettings sets barcode settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets output image information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// WithSamples sets the sampled frame indices.
func (b *Builder) WithSamples(indices []int) *Builder {
	b.summary.Samples = append([]int(nil), indices...)
	return b
}

// WithElapsed sets the run duration.
func (b *Builder) WithElapsed(d time.Duration) *Builder {
	b.summary.Elapsed = d
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
