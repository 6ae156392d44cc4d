package mocks

import (
	"image"

	"github.com/user/videobarcode/pkg/ports"
)

// ImageOps is a mock implementation of ports.ImageOps.
// Unset functions return blank images of the expected size.
type ImageOps struct {
	ResizeFunc           func(img image.Image, width, height int) image.Image
	ConcatHorizontalFunc func(imgs []image.Image) image.Image
	ConvolveFunc         func(img image.Image, kernel ports.Kernel) image.Image
	EncodeFunc           func(img image.Image, filename string) ([]byte, error)

	Kernels []ports.Kernel
}

func (m *ImageOps) Resize(img image.Image, width, height int) image.Image {
	if m.ResizeFunc != nil {
		return m.ResizeFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *ImageOps) ConcatHorizontal(imgs []image.Image) image.Image {
	if m.ConcatHorizontalFunc != nil {
		return m.ConcatHorizontalFunc(imgs)
	}
	width, height := 0, 0
	for _, img := range imgs {
		width += img.Bounds().Dx()
		height = img.Bounds().Dy()
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *ImageOps) Convolve(img image.Image, kernel ports.Kernel) image.Image {
	m.Kernels = append(m.Kernels, kernel)
	if m.ConvolveFunc != nil {
		return m.ConvolveFunc(img, kernel)
	}
	return img
}

func (m *ImageOps) Encode(img image.Image, filename string) ([]byte, error) {
	if m.EncodeFunc != nil {
		return m.EncodeFunc(img, filename)
	}
	return []byte("encoded"), nil
}

var _ ports.ImageOps = (*ImageOps)(nil)
