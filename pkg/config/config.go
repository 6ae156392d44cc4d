// Package config provides configuration loading and management.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/user/videobarcode/pkg/barcode"
	"github.com/user/videobarcode/pkg/orchestrator"
	"github.com/user/videobarcode/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for videobarcode.
// Command line flags override values loaded from a file.
type Config struct {
	// Input/Output
	Source     string `yaml:"source"`
	OutputPath string `yaml:"output"`

	// Barcode
	Frames int `yaml:"frames"`
	Blur   int `yaml:"blur"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Decoding
	Backend string `yaml:"backend"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Progress  bool   `yaml:"progress"`
	Summary   string `yaml:"summary"`

	// Debug
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Width: 1,

		Backend: "auto",

		LogLevel:  "info",
		LogFormat: "console",
		Progress:  true,
	}
}

// DefaultFile is read from the working directory when no config path is given.
const DefaultFile = "videobarcode.yaml"

// Load reads path, or DefaultFile when path is empty and that file exists.
// Without either it returns Defaults.
func Load(fs ports.FileSystem, path string) (Config, error) {
	if path == "" {
		ok, err := fs.Exists(DefaultFile)
		if err != nil {
			return Defaults(), err
		}
		if !ok {
			return Defaults(), nil
		}
		path = DefaultFile
	}
	return LoadFromFile(fs, path)
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
// Unknown keys are rejected.
func LoadFromFile(fs ports.FileSystem, path string) (Config, error) {
	cfg := Defaults()

	data, err := fs.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ToOptions converts Config to barcode.Options.
func (c Config) ToOptions() barcode.Options {
	return barcode.Options{
		Frames: c.Frames,
		Blur:   c.Blur,
		Width:  c.Width,
		Height: c.Height,
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		Source:     c.Source,
		OutputPath: c.OutputPath,

		Frames: c.Frames,
		Blur:   c.Blur,
		Width:  c.Width,
		Height: c.Height,

		Backend: c.Backend,
	}
}
