//go:build !gocv

package gocvsource

import (
	"context"
	"errors"
	"testing"
)

func TestStub_Open(t *testing.T) {
	if Available {
		t.Fatal("expected Available to be false without the gocv tag")
	}
	if _, err := New().Open(context.Background(), "clip.mp4"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
