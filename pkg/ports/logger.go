package ports

import "strings"

// LogLevel is the minimum severity a Logger emits.
type LogLevel int

const (
	// LevelDebug covers per-frame and backend details.
	LevelDebug LogLevel = iota
	// LevelInfo covers run milestones such as the saved output path.
	LevelInfo
	// LevelWarn covers problems that do not abort the run, such as a
	// failed debug dump or summary write.
	LevelWarn
	// LevelError covers failures that abort the run.
	LevelError
	// LevelQuiet suppresses all output.
	LevelQuiet
)

var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

func (l LogLevel) String() string {
	if l < LevelDebug || l > LevelQuiet {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLogLevel parses a level name case-insensitively.
// "warning" is accepted for warn; anything unrecognised yields LevelInfo.
func ParseLogLevel(s string) LogLevel {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return LevelWarn
	}
	for l, name := range levelNames {
		if s == name {
			return LogLevel(l)
		}
	}
	return LevelInfo
}

// Logger writes leveled messages.
//
// msg is an l10n key: implementations translate it before applying args
// as fmt verbs, so callers pass the untranslated English format string.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that tags messages with component.
	WithComponent(component string) Logger
}
