package mocks

import (
	"image"
	"sync"

	"github.com/user/videobarcode/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	PlanJSON  []byte
	Slices    map[int]image.Image
	Unblurred image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Slices:  make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SavePlanJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlanJSON = data
	return nil
}

func (m *DebugSink) SaveSlice(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Slices[index] = img
	return nil
}

func (m *DebugSink) SaveUnblurred(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Unblurred = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                             { return false }
func (m *NullSink) SavePlanJSON(data []byte) error            { return nil }
func (m *NullSink) SaveSlice(index int, img image.Image) error { return nil }
func (m *NullSink) SaveUnblurred(img image.Image) error       { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
