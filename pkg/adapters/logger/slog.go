package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/user/videobarcode/pkg/ports"
)

// SlogLogger writes structured records through log/slog.
// Messages are translated before they reach the handler; the component
// becomes a "component" attribute.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlog creates a structured logger writing tinted records to stderr.
func NewSlog(level ports.LogLevel) *SlogLogger {
	return NewSlogWriter(level, os.Stderr)
}

// NewSlogWriter creates a structured logger writing to w. Color is only
// used when w is a terminal.
func NewSlogWriter(level ports.LogLevel, w io.Writer) *SlogLogger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	handler := tint.NewHandler(w, &tint.Options{
		Level:      slogLevel(level),
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})
	return &SlogLogger{logger: slog.New(handler)}
}

func slogLevel(level ports.LogLevel) slog.Level {
	switch level {
	case ports.LevelDebug:
		return slog.LevelDebug
	case ports.LevelWarn:
		return slog.LevelWarn
	case ports.LevelError:
		return slog.LevelError
	case ports.LevelQuiet:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(msg string, args ...interface{}) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *SlogLogger) Info(msg string, args ...interface{}) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(msg string, args ...interface{}) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *SlogLogger) Error(msg string, args ...interface{}) {
	l.log(slog.LevelError, msg, args...)
}

// WithComponent returns a new logger tagged with the component name.
func (l *SlogLogger) WithComponent(component string) ports.Logger {
	return &SlogLogger{logger: l.logger.With("component", component)}
}

func (l *SlogLogger) log(level slog.Level, msg string, args ...interface{}) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	l.logger.Log(ctx, level, l10n.F(msg, args...))
}

var _ ports.Logger = (*SlogLogger)(nil)
