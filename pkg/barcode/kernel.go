package barcode

import (
	"image"

	"github.com/user/videobarcode/pkg/ports"
)

// DefaultBlur is the blur amount used when blur is requested without a value.
const DefaultBlur = 100

// BlurKernel builds the amount x amount directional blur kernel.
// Every cell is zero except column (amount-1)/2, which holds 1/amount.
// The kernel is exactly centred only for odd amounts.
func BlurKernel(amount int) ports.Kernel {
	weights := make([]float64, amount*amount)
	col := (amount - 1) / 2
	w := 1 / float64(amount)
	for row := 0; row < amount; row++ {
		weights[row*amount+col] = w
	}
	return ports.Kernel{
		Size:    amount,
		Anchor:  image.Pt(amount/2, amount/2),
		Weights: weights,
	}
}
