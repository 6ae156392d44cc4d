// Package encode implements the image encoding stage.
package encode

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/videobarcode/pkg/pipeline"
	"github.com/user/videobarcode/pkg/ports"
)

// Stage encodes the finished barcode in the format its filename asks for.
type Stage struct {
	ops    ports.ImageOps
	logger ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(ops ports.ImageOps, logger ports.Logger) *Stage {
	return &Stage{
		ops:    ops,
		logger: logger.WithComponent("encode"),
	}
}

// Execute encodes the image.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if input.Image == nil || input.Image.Bounds().Empty() {
		return result, fmt.Errorf("no image to encode")
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(input.Filename)), ".")
	bounds := input.Image.Bounds()
	s.logger.Debug("Encoding %dx%d barcode as %s", bounds.Dx(), bounds.Dy(), format)

	data, err := s.ops.Encode(input.Image, input.Filename)
	if err != nil {
		return result, fmt.Errorf("encode %s: %w", input.Filename, err)
	}
	s.logger.Debug("Barcode written: %d bytes", len(data))

	result.Data = data
	result.Format = format
	result.FileSize = int64(len(data))

	return result, nil
}

// Ensure Stage implements pipeline.Stage
var _ pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult] = (*Stage)(nil)
