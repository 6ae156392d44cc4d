package ports

import "time"

// ProgressObserver receives progress notifications while a barcode is built.
// Notifications are side effects only; an observer cannot alter the run.
type ProgressObserver interface {
	// OnStart is called once the video is open and the plan is validated.
	OnStart(source string, frames int, totalFrames float64)

	// OnFrame is called after each slice is appended.
	OnFrame(done, total int, elapsed time.Duration)

	// OnBlur is called before the blur kernel is applied.
	OnBlur(amount int)

	// OnFinish is called when the barcode is complete.
	OnFinish(elapsed time.Duration)
}
