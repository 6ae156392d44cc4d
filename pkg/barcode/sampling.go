package barcode

import (
	"math"
	"strconv"
	"strings"
)

// Interval returns the spacing between sampled frame positions.
func Interval(totalFrames float64, frames int) float64 {
	return totalFrames / float64(frames)
}

// SamplePositions returns the real-valued positions of each sample:
// interval/2 + k*interval for k in [0, frames).
// Each position is computed directly from k so rounding never accumulates.
func SamplePositions(totalFrames float64, frames int) []float64 {
	if frames < 1 {
		return nil
	}
	interval := Interval(totalFrames, frames)
	positions := make([]float64, frames)
	for k := range positions {
		positions[k] = interval/2 + float64(k)*interval
	}
	return positions
}

// FrameIndex truncates a sample position to the frame index that is read.
func FrameIndex(position float64) int {
	return int(math.Floor(position))
}

// ValidateFrames checks a requested frame count against the video length.
func ValidateFrames(frames int, totalFrames float64) error {
	if frames < 1 {
		return invalidArgument("nFrames must be an integer greater than zero (got %d)", frames)
	}
	if !(float64(frames) <= totalFrames) {
		return invalidArgument("nFrames is larger than the total available (%d > %s)", frames, formatCount(totalFrames))
	}
	return nil
}

// ParseFrameCount parses a user-supplied frame count.
// Non-numeric and non-integral values are rejected.
func ParseFrameCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return 0, invalidArgument("nFrames must be an integer greater than zero (got %d)", n)
		}
		return n, nil
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return 0, invalidArgument("nFrames must be an integer (got %s)", s)
	}
	return 0, invalidArgument("nFrames must be an integer greater than zero (got %q)", s)
}
