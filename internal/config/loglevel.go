package config

import (
	"fmt"
	"log/slog"
)

// LogLevel controls diagnostic verbosity. Only the declared variants survive
// construction; free-form strings are rejected by ParseLogLevel.
type LogLevel string

const (
	LogLevelError LogLevel = "error"
	LogLevelWarn  LogLevel = "warn"
	LogLevelInfo  LogLevel = "info"
	LogLevelDebug LogLevel = "debug"
	LogLevelTrace LogLevel = "trace"
)

// LogLevels lists the accepted variants from least to most verbose.
func LogLevels() []LogLevel {
	return []LogLevel{LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug, LogLevelTrace}
}

// ParseLogLevel maps a lowercase token onto its LogLevel variant.
func ParseLogLevel(token string) (LogLevel, error) {
	for _, level := range LogLevels() {
		if token == string(level) {
			return level, nil
		}
	}
	return "", fmt.Errorf("log-level: unsupported value %q (accepted values: %s)", token, acceptedTokens(LogLevels()))
}

func (l LogLevel) String() string {
	return string(l)
}

// SlogLevel maps the level onto log/slog's scale. Trace sits below slog's
// debug so trace-only records can be filtered independently.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelError:
		return slog.LevelError
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelTrace:
		return slog.LevelDebug - 4
	default:
		return slog.LevelInfo
	}
}
