// Package imageops implements ports.ImageOps with gg, x/image and imaging.
package imageops

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/videobarcode/pkg/ports"
)

// ErrUnsupportedFormat is returned when an output filename has no known image extension.
var ErrUnsupportedFormat = errors.New("imageops: unsupported image format")

// JPEGQuality is used when the output is a JPEG file.
const JPEGQuality = 95

// Ops implements ports.ImageOps.
type Ops struct{}

// New creates a new Ops.
func New() *Ops {
	return &Ops{}
}

// Resize scales img to width x height with bilinear interpolation.
func (o *Ops) Resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// ConcatHorizontal draws imgs side by side on a single canvas.
// The canvas is as tall as the first image.
func (o *Ops) ConcatHorizontal(imgs []image.Image) image.Image {
	if len(imgs) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	width := 0
	for _, img := range imgs {
		width += img.Bounds().Dx()
	}
	height := imgs[0].Bounds().Dy()

	dc := gg.NewContext(width, height)
	x := 0
	for _, img := range imgs {
		dc.DrawImage(originAligned(img), x, 0)
		x += img.Bounds().Dx()
	}
	return dc.Image()
}

// Convolve correlates img with kernel using OpenCV filter2D semantics:
// the kernel anchor sits on the destination pixel, borders are reflected
// without repeating the edge pixel (reflect-101) and results are rounded
// and saturated to 8 bits.
func (o *Ops) Convolve(img image.Image, kernel ports.Kernel) image.Image {
	src := toRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return dst
	}

	taps := nonZeroTaps(kernel)

	// Reflected coordinates per tap, computed once.
	xs := make([][]int, len(taps))
	ys := make([][]int, len(taps))
	for t, tap := range taps {
		xs[t] = make([]int, w)
		for x := 0; x < w; x++ {
			xs[t][x] = reflect101(x+tap.dx, w)
		}
		ys[t] = make([]int, h)
		for y := 0; y < h; y++ {
			ys[t][y] = reflect101(y+tap.dy, h)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float64
			for t, tap := range taps {
				i := ys[t][y]*src.Stride + xs[t][x]*4
				r += tap.w * float64(src.Pix[i])
				g += tap.w * float64(src.Pix[i+1])
				b += tap.w * float64(src.Pix[i+2])
				a += tap.w * float64(src.Pix[i+3])
			}
			j := y*dst.Stride + x*4
			dst.Pix[j] = saturate(r)
			dst.Pix[j+1] = saturate(g)
			dst.Pix[j+2] = saturate(b)
			dst.Pix[j+3] = saturate(a)
		}
	}
	return dst
}

// Encode encodes img in the format implied by filename's extension.
func (o *Ops) Encode(img image.Image, filename string) ([]byte, error) {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// CheckFormat reports whether filename has an extension Encode can write.
func CheckFormat(filename string) error {
	if _, err := imaging.FormatFromFilename(filename); err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	return nil
}

// Ensure Ops implements ports.ImageOps
var _ ports.ImageOps = (*Ops)(nil)

type tap struct {
	dx, dy int
	w      float64
}

func nonZeroTaps(k ports.Kernel) []tap {
	var taps []tap
	for row := 0; row < k.Size; row++ {
		for col := 0; col < k.Size; col++ {
			w := k.At(col, row)
			if w == 0 {
				continue
			}
			taps = append(taps, tap{dx: col - k.Anchor.X, dy: row - k.Anchor.Y, w: w})
		}
	}
	return taps
}

// reflect101 maps p into [0, n) as gfedcb|abcdefgh|gfedcba.
func reflect101(p, n int) int {
	if n == 1 {
		return 0
	}
	for p < 0 || p >= n {
		if p < 0 {
			p = -p
		}
		if p >= n {
			p = 2*n - 2 - p
		}
	}
	return p
}

func saturate(v float64) uint8 {
	v = math.RoundToEven(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// toRGBA returns img as an *image.RGBA whose bounds start at (0,0).
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// originAligned returns img with bounds starting at (0,0).
// gg positions images by their bounds, so offset sub-images would shift.
func originAligned(img image.Image) image.Image {
	if img.Bounds().Min == (image.Point{}) {
		return img
	}
	return toRGBA(img)
}
