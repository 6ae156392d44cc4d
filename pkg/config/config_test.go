package config

import (
	"errors"
	iofs "io/fs"
	"testing"

	"github.com/user/videobarcode/pkg/barcode"
	"github.com/user/videobarcode/pkg/mocks"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Width != 1 {
		t.Errorf("expected default width 1, got %d", cfg.Width)
	}
	if cfg.Height != 0 || cfg.Blur != 0 || cfg.Frames != 0 {
		t.Errorf("expected zero height, blur and frames, got %+v", cfg)
	}
	if cfg.Backend != "auto" {
		t.Errorf("expected auto backend, got %q", cfg.Backend)
	}
	if !cfg.Progress {
		t.Error("expected progress enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("barcode.yaml", []byte(`
frames: 500
blur: 100
height: 240
backend: vidio
log_level: debug
progress: false
debug_dir: ./debug
`))

	cfg, err := LoadFromFile(fs, "barcode.yaml")
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Frames != 500 || cfg.Blur != 100 || cfg.Height != 240 {
		t.Errorf("unexpected barcode settings: %+v", cfg)
	}
	if cfg.Width != 1 {
		t.Errorf("expected default width to survive, got %d", cfg.Width)
	}
	if cfg.Backend != "vidio" || cfg.LogLevel != "debug" || cfg.Progress {
		t.Errorf("unexpected output settings: %+v", cfg)
	}
	if cfg.DebugDir != "./debug" {
		t.Errorf("expected debug dir, got %q", cfg.DebugDir)
	}
}

func TestLoadFromFile_Empty(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("empty.yaml", []byte(""))

	cfg, err := LoadFromFile(fs, "empty.yaml")
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromFile_UnknownKey(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("bad.yaml", []byte("frames: 5\nnframes: 10\n"))

	if _, err := LoadFromFile(fs, "bad.yaml"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(mocks.NewFileSystem(), "missing.yaml")
	if !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestToOptions(t *testing.T) {
	cfg := Defaults()
	cfg.Frames = 5
	cfg.Blur = 3
	cfg.Width = 2

	want := barcode.Options{Frames: 5, Blur: 3, Width: 2}
	if got := cfg.ToOptions(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Source = "movie.mp4"
	cfg.OutputPath = "barcode.png"
	cfg.Frames = 10

	oc := cfg.ToOrchestratorConfig()
	if oc.Source != "movie.mp4" || oc.OutputPath != "barcode.png" || oc.Frames != 10 || oc.Width != 1 {
		t.Errorf("unexpected orchestrator config: %+v", oc)
	}
	if oc.Backend != "auto" {
		t.Errorf("expected backend to be carried, got %q", oc.Backend)
	}
}

func TestLoad_DefaultFile(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile(DefaultFile, []byte("frames: 12\n"))

	cfg, err := Load(fs, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Frames != 12 {
		t.Errorf("expected frames from %s, got %d", DefaultFile, cfg.Frames)
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(mocks.NewFileSystem(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile(DefaultFile, []byte("frames: 12\n"))
	fs.AddFile("other.yaml", []byte("frames: 3\n"))

	cfg, err := Load(fs, "other.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Frames != 3 {
		t.Errorf("expected frames from other.yaml, got %d", cfg.Frames)
	}
}

func TestLoad_ExistsError(t *testing.T) {
	fs := mocks.NewFileSystem()
	statErr := errors.New("permission denied")
	fs.ExistsFunc = func(string) (bool, error) { return false, statErr }

	if _, err := Load(fs, ""); !errors.Is(err, statErr) {
		t.Errorf("expected stat error, got %v", err)
	}
}
