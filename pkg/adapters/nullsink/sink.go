// Package nullsink provides the DebugSink used when no debug directory is set.
package nullsink

import (
	"image"

	"github.com/user/videobarcode/pkg/ports"
)

// Sink discards slices, plans and unblurred barcodes. Enabled reports false
// so the builder skips encoding debug output entirely.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

func (*Sink) Enabled() bool                    { return false }
func (*Sink) SavePlanJSON([]byte) error        { return nil }
func (*Sink) SaveSlice(int, image.Image) error { return nil }
func (*Sink) SaveUnblurred(image.Image) error  { return nil }

var _ ports.DebugSink = (*Sink)(nil)
