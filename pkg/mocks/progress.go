package mocks

import (
	"sync"
	"time"

	"github.com/user/videobarcode/pkg/ports"
)

// Progress is a mock implementation of ports.ProgressObserver that records calls.
type Progress struct {
	mu sync.Mutex

	Started     bool
	Source      string
	Frames      int
	TotalFrames float64
	Done        []int
	BlurAmount  int
	Finished    bool
}

func (m *Progress) OnStart(source string, frames int, totalFrames float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Started = true
	m.Source = source
	m.Frames = frames
	m.TotalFrames = totalFrames
}

func (m *Progress) OnFrame(done, total int, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Done = append(m.Done, done)
}

func (m *Progress) OnBlur(amount int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BlurAmount = amount
}

func (m *Progress) OnFinish(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Finished = true
}

var _ ports.ProgressObserver = (*Progress)(nil)
