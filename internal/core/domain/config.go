package domain

import (
	"strings"
	"time"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a config string to a LogLevel, defaulting to info if unknown.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// LogFormat selects the log output encoding.
type LogFormat string

const (
	// LogFormatAuto picks pretty output on a terminal and JSON otherwise.
	LogFormatAuto LogFormat = "auto"
	// LogFormatPretty forces human-readable output.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON forces JSON output.
	LogFormatJSON LogFormat = "json"
)

// Config is the resolved vigil configuration.
type Config struct {
	// Debounce is the quiet period before a changed document is reviewed.
	Debounce time.Duration
	// RefactorVisible controls whether auto-refactoring is offered to the user at all.
	RefactorVisible bool
	// LogLevel is the minimum level that is logged.
	LogLevel LogLevel
	// LogFormat is the log output encoding.
	LogFormat LogFormat
	// WatchSkip lists directory names the watcher never descends into.
	WatchSkip []string
	// Path is the config file the values were read from. Empty when defaults are used.
	Path string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Debounce:        DefaultDebounceDelay,
		RefactorVisible: true,
		LogLevel:        LogLevelInfo,
		LogFormat:       LogFormatAuto,
		WatchSkip:       []string{".git", ".jj", "node_modules"},
	}
}
