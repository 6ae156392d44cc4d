// Package progress provides ports.ProgressObserver implementations.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/user/videobarcode/pkg/ports"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Bar renders a terminal progress bar while frames are read.
// Stage changes are reported through the logger.
type Bar struct {
	w      io.Writer
	logger ports.Logger
	bar    *progressbar.ProgressBar
}

// NewBar creates a progress bar writing to w.
func NewBar(w io.Writer, logger ports.Logger) *Bar {
	return &Bar{w: w, logger: logger}
}

// OnStart implements ports.ProgressObserver.
func (b *Bar) OnStart(source string, frames int, totalFrames float64) {
	b.logger.Info("Starting visualization of %s", source)
	b.bar = progressbar.NewOptions(frames,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription("frames"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(b.w)
		}),
	)
}

// OnFrame implements ports.ProgressObserver.
func (b *Bar) OnFrame(done, total int, elapsed time.Duration) {
	if b.bar == nil {
		return
	}
	_ = b.bar.Set(done)
}

// OnBlur implements ports.ProgressObserver.
func (b *Bar) OnBlur(amount int) {
	b.finishBar()
	b.logger.Info("Applying blur...")
}

// OnFinish implements ports.ProgressObserver.
func (b *Bar) OnFinish(elapsed time.Duration) {
	b.finishBar()
	b.logger.Info("Done.")
}

func (b *Bar) finishBar() {
	if b.bar == nil {
		return
	}
	if !b.bar.IsFinished() {
		_ = b.bar.Finish()
	}
	b.bar = nil
}

// Log reports progress as log lines, for output that is not a terminal.
// A frame line is emitted each time another tenth of the frames is done.
type Log struct {
	logger ports.Logger
	step   int
}

// NewLog creates a log-based observer.
func NewLog(logger ports.Logger) *Log {
	return &Log{logger: logger}
}

// OnStart implements ports.ProgressObserver.
func (l *Log) OnStart(source string, frames int, totalFrames float64) {
	l.step = 0
	l.logger.Info("Starting visualization of %s", source)
}

// OnFrame implements ports.ProgressObserver.
func (l *Log) OnFrame(done, total int, elapsed time.Duration) {
	if total <= 0 {
		return
	}
	step := done * 10 / total
	if step <= l.step && done != total {
		return
	}
	l.step = step
	l.logger.Info("Please wait ... %d out of %d total frames. Time elapsed: %s", done, total, elapsed.Round(time.Millisecond))
}

// OnBlur implements ports.ProgressObserver.
func (l *Log) OnBlur(amount int) {
	l.logger.Info("Applying blur...")
}

// OnFinish implements ports.ProgressObserver.
func (l *Log) OnFinish(elapsed time.Duration) {
	l.logger.Info("Done.")
}

// Noop discards progress notifications.
type Noop struct{}

// NewNoop creates a no-op observer.
func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) OnStart(source string, frames int, totalFrames float64) {}
func (Noop) OnFrame(done, total int, elapsed time.Duration)         {}
func (Noop) OnBlur(amount int)                                      {}
func (Noop) OnFinish(elapsed time.Duration)                         {}

// Ensure implementations
var (
	_ ports.ProgressObserver = (*Bar)(nil)
	_ ports.ProgressObserver = (*Log)(nil)
	_ ports.ProgressObserver = (*Noop)(nil)
)
