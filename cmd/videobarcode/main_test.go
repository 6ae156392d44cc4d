package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ideamans/go-l10n"
	"github.com/user/videobarcode/pkg/adapters/smartsource"
	"github.com/user/videobarcode/pkg/mocks"
	"github.com/user/videobarcode/pkg/ports"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.RunContext(context.Background(), normalizeArgs(append([]string{"videobarcode"}, args...)))
	return out.String(), err
}

type fakeSource struct {
	*mocks.VideoSource
}

func (fakeSource) Select(string) smartsource.Backend { return smartsource.BackendFFmpeg }

func useFakeSource(t *testing.T, path string, v *mocks.Video) *mocks.VideoSource {
	t.Helper()
	videos := mocks.NewVideoSource()
	videos.AddVideo(path, v)
	orig := newSource
	newSource = func(smartsource.Options) barcodeSource { return fakeSource{videos} }
	t.Cleanup(func() { newSource = orig })
	return videos
}

func TestApp_ReportsSavedPath(t *testing.T) {
	useFakeSource(t, "in.mp4", &mocks.Video{Frames: 100, Width: 8, Height: 6})
	dest := filepath.Join(t.TempDir(), "out.png")

	// Quiet mode silences logging but not the result line.
	out, err := runApp(t, "-n", "5", "-Q", "in.mp4", dest)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if want := l10n.F("Visualization saved to %s", dest); !strings.Contains(out, want) {
		t.Errorf("output %q does not contain %q", out, want)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestApp_InvalidOptionsRejectedBeforeOpen(t *testing.T) {
	videos := useFakeSource(t, "in.mp4", &mocks.Video{Frames: 100, Width: 8, Height: 6})
	videos.OpenFunc = func(ctx context.Context, path string) (ports.VideoHandle, error) {
		t.Errorf("source opened despite invalid options: %s", path)
		return nil, errors.New("unexpected open")
	}

	_, err := runApp(t, "-n", "5", "-w", "0", "-Q", "in.mp4", filepath.Join(t.TempDir(), "out.png"))
	if got := exitCode(err); got != exitInvalidArgument {
		t.Errorf("exit code = %d, want %d (err: %v)", got, exitInvalidArgument, err)
	}
}

func TestApp_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.mp4")
	dest := filepath.Join(dir, "out.png")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing positionals", []string{"-n", "5", "-Q"}, exitInvalidArgument},
		{"missing frame count", []string{"-Q", missing, dest}, exitInvalidArgument},
		{"fractional frame count", []string{"-n", "2.5", "-Q", missing, dest}, exitInvalidArgument},
		{"unknown output format", []string{"-n", "5", "-Q", missing, filepath.Join(dir, "out.xyz")}, exitInvalidArgument},
		{"non-numeric width", []string{"-n", "5", "-w", "wide", "-Q", missing, dest}, exitInvalidArgument},
		{"unknown backend", []string{"-n", "5", "--backend", "opencv", "-Q", missing, dest}, exitInvalidArgument},
		{"negative blur", []string{"-n", "5", "-b", "-3", "-Q", missing, dest}, exitInvalidArgument},
		{"missing source", []string{"-n", "5", "-Q", missing, dest}, exitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, tt.args...)
			if got := exitCode(err); got != tt.want {
				t.Errorf("exit code = %d, want %d (err: %v)", got, tt.want, err)
			}
			if _, statErr := os.Stat(dest); statErr == nil {
				t.Error("no output should be written on failure")
			}
		})
	}
}

func TestApp_ConfigFileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "videobarcode.yaml")
	cfg := "frames: 5\noutput: " + filepath.Join(dir, "out.png") + "\nlog_level: error\nprogress: false\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	// Only SOURCE on the command line; DEST and frames come from the file.
	_, err := runApp(t, "--config", cfgPath, "-Q", filepath.Join(dir, "missing.mp4"))
	if got := exitCode(err); got != exitNotFound {
		t.Errorf("exit code = %d, want %d (err: %v)", got, exitNotFound, err)
	}
}

func TestApp_UnknownConfigKey(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(cfgPath, []byte("frame: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := runApp(t, "--config", cfgPath, "-Q", "in.mp4", "out.png")
	if got := exitCode(err); got != exitInvalidArgument {
		t.Errorf("exit code = %d, want %d (err: %v)", got, exitInvalidArgument, err)
	}
}

func TestApp_Version(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("output %q does not contain version %q", out, version)
	}
}

func TestApp_InspectMissingFile(t *testing.T) {
	_, err := runApp(t, "inspect", filepath.Join(t.TempDir(), "missing.mp4"))
	if got := exitCode(err); got != exitNotFound {
		t.Errorf("exit code = %d, want %d (err: %v)", got, exitNotFound, err)
	}
}
