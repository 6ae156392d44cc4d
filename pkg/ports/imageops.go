package ports

import (
	"image"
)

// Kernel is a square correlation kernel with weights stored row-major.
type Kernel struct {
	Size    int
	Anchor  image.Point // Kernel cell aligned with the destination pixel
	Weights []float64
}

// At returns the weight at column x, row y.
func (k Kernel) At(x, y int) float64 {
	return k.Weights[y*k.Size+x]
}

// ImageOps abstracts the raster operations needed to assemble a barcode.
type ImageOps interface {
	// Resize scales img to exactly width x height.
	Resize(img image.Image, width, height int) image.Image

	// ConcatHorizontal places images side by side, left to right.
	// All images must share the same height.
	ConcatHorizontal(imgs []image.Image) image.Image

	// Convolve correlates img with kernel, replicating the border by reflection.
	Convolve(img image.Image, kernel Kernel) image.Image

	// Encode encodes img in the format implied by filename's extension.
	Encode(img image.Image, filename string) ([]byte, error)
}
