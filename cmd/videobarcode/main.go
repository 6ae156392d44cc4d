// Package main provides the CLI entry point for videobarcode.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/videobarcode/pkg/adapters/filesink"
	"github.com/user/videobarcode/pkg/adapters/imageops"
	"github.com/user/videobarcode/pkg/adapters/logger"
	"github.com/user/videobarcode/pkg/adapters/nullsink"
	"github.com/user/videobarcode/pkg/adapters/osfilesystem"
	"github.com/user/videobarcode/pkg/adapters/progress"
	"github.com/user/videobarcode/pkg/adapters/smartsource"
	"github.com/user/videobarcode/pkg/barcode"
	"github.com/user/videobarcode/pkg/config"
	"github.com/user/videobarcode/pkg/orchestrator"
	"github.com/user/videobarcode/pkg/ports"
	"github.com/user/videobarcode/pkg/stages/encode"
	"github.com/user/videobarcode/pkg/summarizer"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	app := newApp()
	if err := app.RunContext(ctx, normalizeArgs(os.Args)); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		cancel()
		os.Exit(exitCode(err))
	}
}

func newApp() *cli.App {
	// -h is the slice height, so help is long-form only.
	cli.HelpFlag = &cli.BoolFlag{
		Name:  "help",
		Usage: l10n.T("Show help"),
	}

	return &cli.App{
		Name:            "videobarcode",
		Usage:           l10n.T("Create a barcode image from evenly spaced video frames"),
		UsageText:       "videobarcode [options] SOURCE DEST\nvideobarcode inspect SOURCE",
		Version:         version,
		HideVersion:     true,
		HideHelpCommand: true,
		Flags:           rootFlags(),
		Action:          runBarcode,
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     l10n.T("Print backend, codec, frame count and dimensions of a video"),
				ArgsUsage: "SOURCE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "backend", Value: string(smartsource.BackendAuto), Usage: l10n.T("Decoding backend (auto, ffmpeg, vidio, mpeg, gocv)")},
				},
				Action: runInspect,
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, l10n.F("videobarcode version %s", version))
					return nil
				},
			},
		},
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return fmt.Errorf("%w: %v", barcode.ErrInvalidArgument, err)
		},
		// Exit codes are decided in main.
		ExitErrHandler: func(c *cli.Context, err error) {},
	}
}

func rootFlags() []cli.Flag {
	return []cli.Flag{
		// Barcode
		&cli.StringFlag{Name: "frames", Aliases: []string{"n"}, Category: l10n.T("Barcode"), Usage: l10n.T("Number of frames to sample (required)")},
		&cli.IntFlag{Name: "blur", Aliases: []string{"b"}, Category: l10n.T("Barcode"), Usage: l10n.T("Blur amount; a bare -b means 100")},
		&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Category: l10n.T("Barcode"), Usage: l10n.T("Width of each slice in pixels (default: 1)")},
		&cli.IntFlag{Name: "height", Aliases: []string{"h"}, Category: l10n.T("Barcode"), Usage: l10n.T("Height of each slice in pixels (default: video height)")},

		// Decoding
		&cli.StringFlag{Name: "backend", Category: l10n.T("Decoding"), Usage: l10n.T("Decoding backend (auto, ffmpeg, vidio, mpeg, gocv)")},
		&cli.StringFlag{Name: "config", Category: l10n.T("Decoding"), Usage: l10n.T("YAML file with default settings (default: ./videobarcode.yaml if present)")},

		// Output
		&cli.StringFlag{Name: "summary", Category: l10n.T("Output"), Usage: l10n.T("Write a run summary (Markdown, or YAML for .yaml/.yml)")},
		&cli.StringFlag{Name: "debug-dir", Category: l10n.T("Debug"), Usage: l10n.T("Save slices and the sampling plan to this directory")},

		// Logging
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Category: l10n.T("Logging"), Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.StringFlag{Name: "log-format", Category: l10n.T("Logging"), Usage: l10n.T("Log format (console, structured)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Category: l10n.T("Logging"), Usage: l10n.T("Suppress all log output")},
		&cli.BoolFlag{Name: "no-progress", Category: l10n.T("Logging"), Usage: l10n.T("Disable the progress bar")},
	}
}

// loadConfig merges defaults, the config file (--config or DefaultFile),
// flags and positional arguments, in increasing precedence.
func loadConfig(c *cli.Context, fs ports.FileSystem) (config.Config, error) {
	cfg, err := config.Load(fs, c.String("config"))
	if err != nil {
		return cfg, fmt.Errorf("%w: config: %w", barcode.ErrInvalidArgument, err)
	}

	if c.IsSet("frames") {
		n, err := barcode.ParseFrameCount(c.String("frames"))
		if err != nil {
			return cfg, err
		}
		cfg.Frames = n
	}
	if c.IsSet("blur") {
		cfg.Blur = c.Int("blur")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("summary") {
		cfg.Summary = c.String("summary")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.Bool("no-progress") {
		cfg.Progress = false
	}

	if c.NArg() > 2 {
		return cfg, fmt.Errorf("%w: unexpected arguments %q", barcode.ErrInvalidArgument, c.Args().Slice()[2:])
	}
	if c.NArg() >= 1 {
		cfg.Source = c.Args().Get(0)
	}
	if c.NArg() == 2 {
		cfg.OutputPath = c.Args().Get(1)
	}
	if cfg.Source == "" || cfg.OutputPath == "" {
		return cfg, fmt.Errorf("%w: SOURCE and DEST are required", barcode.ErrInvalidArgument)
	}
	if cfg.Frames == 0 {
		return cfg, fmt.Errorf("%w: nFrames is required (-n)", barcode.ErrInvalidArgument)
	}
	if err := imageops.CheckFormat(cfg.OutputPath); err != nil {
		return cfg, fmt.Errorf("%w: %w", barcode.ErrInvalidArgument, err)
	}
	if err := cfg.ToOptions().Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

type barcodeSource interface {
	ports.VideoSource
	Select(path string) smartsource.Backend
}

// newSource is replaced in tests.
var newSource = func(opts smartsource.Options) barcodeSource {
	return smartsource.New(opts)
}

func newLogger(cfg config.Config, quiet bool) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	level := ports.ParseLogLevel(cfg.LogLevel)
	if cfg.LogFormat == "structured" {
		return logger.NewSlog(level)
	}
	return logger.NewConsole(level)
}

func newProgress(cfg config.Config, quiet bool, w io.Writer, log ports.Logger) ports.ProgressObserver {
	switch {
	case quiet || !cfg.Progress:
		return progress.NewNoop()
	case progress.IsTerminal(w):
		return progress.NewBar(w, log)
	default:
		return progress.NewLog(log)
	}
}

// runBarcode executes the root command.
func runBarcode(c *cli.Context) error {
	fs := osfilesystem.New()

	cfg, err := loadConfig(c, fs)
	if err != nil {
		return err
	}
	backend, err := smartsource.ParseBackend(cfg.Backend)
	if err != nil {
		return fmt.Errorf("%w: %w", barcode.ErrInvalidArgument, err)
	}

	quiet := c.Bool("quiet")
	log := newLogger(cfg, quiet)
	observer := newProgress(cfg, quiet, os.Stderr, log)

	// Create adapters
	ops := imageops.New()
	source := newSource(smartsource.Options{Backend: backend, Logger: log})

	var sink ports.DebugSink
	if cfg.DebugDir != "" {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, ops)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	builder := barcode.New(source, ops, observer, sink, log)
	encodeStage := encode.NewStage(ops, log)

	orch := orchestrator.New(builder, encodeStage, fs, log)

	orchConfig := cfg.ToOrchestratorConfig()
	orchConfig.Backend = string(source.Select(cfg.Source))

	result, err := orch.Run(c.Context, orchConfig)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted: %w", err)
		}
		return err
	}
	fmt.Fprintln(c.App.Writer, l10n.F("Visualization saved to %s", result.OutputPath))

	if cfg.Summary != "" {
		writer := summarizer.NewWriter(summarizer.FormatterFor(cfg.Summary), fs)
		if err := writer.Write(cfg.Summary, buildSummary(cfg, result)); err != nil {
			log.Warn("Failed to write summary: %s", err)
		} else {
			log.Info("Summary written to %s", cfg.Summary)
		}
	}

	return nil
}

func buildSummary(cfg config.Config, result orchestrator.RunResult) *summarizer.Summary {
	indices := make([]int, len(result.Samples))
	for i, s := range result.Samples {
		indices[i] = s.Index
	}

	return summarizer.NewBuilder().
		WithInput(result.Source, result.Backend, result.TotalFrames, result.Interval).
		WithSettings(summarizer.Settings{
			Frames:         result.Frames,
			SliceWidth:     result.SliceWidth,
			SliceHeight:    result.SliceHeight,
			HeightInferred: cfg.Height == 0,
			Blur:           result.Blur,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:     result.OutputPath,
			Format:   result.Format,
			Width:    result.ImageWidth,
			Height:   result.ImageHeight,
			FileSize: result.FileSize,
		}).
		WithSamples(indices).
		WithElapsed(result.Elapsed).
		Build()
}

// runInspect executes the inspect command.
func runInspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: inspect takes exactly one SOURCE", barcode.ErrInvalidArgument)
	}
	path := c.Args().First()

	backend, err := smartsource.ParseBackend(c.String("backend"))
	if err != nil {
		return fmt.Errorf("%w: %w", barcode.ErrInvalidArgument, err)
	}

	source := smartsource.New(smartsource.Options{Backend: backend})
	info, err := source.Inspect(c.Context, path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", barcode.ErrNotFound, path, err)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "%-12s %s\n", l10n.T("Source")+":", path)
	fmt.Fprintf(w, "%-12s %s\n", l10n.T("Backend")+":", info.Backend)
	fmt.Fprintf(w, "%-12s %s\n", l10n.T("Codec")+":", info.Codec)
	fmt.Fprintf(w, "%-12s %dx%d\n", l10n.T("Size")+":", info.Width, info.Height)
	fmt.Fprintf(w, "%-12s %.3f\n", l10n.T("FPS")+":", info.FPS)
	fmt.Fprintf(w, "%-12s %g\n", l10n.T("Frames")+":", info.FrameCount)
	return nil
}
