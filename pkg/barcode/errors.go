package barcode

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the source cannot be opened as a video.
	ErrNotFound = errors.New("video not found")

	// ErrInvalidArgument is returned when run parameters are rejected.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("cannot read from video file")
)

// DecodeError reports a frame that could not be decoded mid-run.
// A single DecodeError aborts the whole barcode.
type DecodeError struct {
	Index int     // Frame index that failed
	Total float64 // Total frame count reported by the video
	Err   error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("cannot read from video file at frame %d out of %s", e.Index, formatCount(e.Total))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// formatCount prints whole counts without a fractional part.
func formatCount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
