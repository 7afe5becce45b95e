package slogobs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Environment variables consulted for defaults, most specific first.
const (
	EnvLogLevel         = "GRADER_LOG_LEVEL"
	EnvLogFormat        = "GRADER_LOG_FORMAT"
	envLogLevelGeneric  = "LOG_LEVEL"
	envLogFormatGeneric = "LOG_FORMAT"
)

// LevelTrace sits below slog.LevelDebug and is reported as TRACE.
const LevelTrace = slog.LevelDebug - 4

// LevelFromEnv returns the level configured by GRADER_LOG_LEVEL or LOG_LEVEL,
// defaulting to INFO.
func LevelFromEnv() slog.Level {
	if v := lookupEnv(EnvLogLevel, envLogLevelGeneric); v != "" {
		return ParseLevel(v)
	}
	return slog.LevelInfo
}

// FormatFromEnv returns the format configured by GRADER_LOG_FORMAT or
// LOG_FORMAT, defaulting to compact.
func FormatFromEnv() Format {
	if v := lookupEnv(EnvLogFormat, envLogFormatGeneric); v != "" {
		return ParseFormat(v)
	}
	return FormatCompact
}

// ParseLevel parses TRACE, DEBUG, INFO, WARN/WARNING or ERROR
// (case-insensitive). Unknown values yield INFO and a note on stderr.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return slog.LevelDebug
	case "INFO", "":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "Warning: Unknown log level '%s', using INFO\n", s)
		return slog.LevelInfo
	}
}

// LevelString is the label printed for a level.
func LevelString(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "TRACE"
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}

func lookupEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
