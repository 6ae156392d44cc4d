package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SavePlanJSON saves the sampling plan as JSON.
	SavePlanJSON(data []byte) error

	// SaveSlice saves a resized slice before concatenation.
	SaveSlice(index int, img image.Image) error

	// SaveUnblurred saves the assembled barcode before blurring.
	SaveUnblurred(img image.Image) error
}
