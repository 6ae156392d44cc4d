// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/videobarcode/pkg/ports"
)

// Layout of a debug directory:
//
//	plan.json              sampling positions and frame indices
//	slices/slice-0000.png  resized slices in barcode order
//	unblurred.png          the barcode before blurring
const (
	planFile      = "plan.json"
	slicesDir     = "slices"
	unblurredFile = "unblurred.png"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	ops     ports.ImageOps
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, ops ports.ImageOps) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		ops:     ops,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SavePlanJSON saves the sampling plan as JSON.
func (s *Sink) SavePlanJSON(data []byte) error {
	path := filepath.Join(s.baseDir, planFile)
	return s.fs.WriteFile(path, data)
}

// SaveSlice saves a resized slice as PNG.
func (s *Sink) SaveSlice(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, slicesDir)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	name := fmt.Sprintf("slice-%04d.png", index)
	data, err := s.ops.Encode(img, name)
	if err != nil {
		return fmt.Errorf("encode slice: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(dir, name), data)
}

// SaveUnblurred saves the assembled barcode before blurring.
func (s *Sink) SaveUnblurred(img image.Image) error {
	data, err := s.ops.Encode(img, unblurredFile)
	if err != nil {
		return fmt.Errorf("encode unblurred barcode: %w", err)
	}
	path := filepath.Join(s.baseDir, unblurredFile)
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
