package pipeline

import (
	"image"
)

// BarcodeInput contains parameters for building one barcode.
type BarcodeInput struct {
	Source string // Path of the video to sample
	Frames int    // Number of slices in the barcode
	Blur   int    // Blur amount, 0 disables blurring
	Width  int    // Width of each slice in pixels (default: 1)
	Height int    // Height of each slice in pixels, 0 infers it from the video
}

// DefaultBarcodeInput returns BarcodeInput with default values.
func DefaultBarcodeInput() BarcodeInput {
	return BarcodeInput{
		Width: 1,
	}
}

// Sample records one sampled frame.
type Sample struct {
	Position float64 `json:"position"` // Real-valued sampling position
	Index    int     `json:"index"`    // Frame index actually read
}

// BarcodeResult contains the assembled barcode and what went into it.
type BarcodeResult struct {
	Image       image.Image
	TotalFrames float64
	Interval    float64
	Width       int // Slice width
	Height      int // Resolved slice height
	Samples     []Sample
}

// EncodeInput contains the image to encode and its destination name.
type EncodeInput struct {
	Image    image.Image
	Filename string // The extension selects the image format
}

// EncodeResult contains the encoded image file.
type EncodeResult struct {
	Data     []byte
	Format   string // Lower-case extension without the dot, e.g. "png"
	FileSize int64
}
