// Package gocvsource implements ports.VideoSource with OpenCV through gocv.
//
// OpenCV is only linked when building with -tags gocv. Without the tag the
// package still compiles and Open reports ErrUnavailable.
package gocvsource

import "errors"

// Backend is the backend name reported by Describe.
const Backend = "gocv"

// ErrUnavailable is returned by Open when the binary was built without gocv.
var ErrUnavailable = errors.New("gocvsource: built without gocv support (rebuild with -tags gocv)")
