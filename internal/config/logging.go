package config

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// SetupLogging installs the default slog logger. Logs always go to stderr
// so that match output on stdout stays clean.
func SetupLogging(s *Settings) {
	SetupLoggingWithWriter(s, os.Stderr)
}

// SetupLoggingWithWriter installs the default slog logger on the given writer
func SetupLoggingWithWriter(s *Settings, w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: SlogLevel(s.LogLevel)})
	slog.SetDefault(slog.New(handler))
}

// SlogLevel maps a settings log level name to a slog.Level.
// Unknown names fall back to warn.
func SlogLevel(level string) slog.Level {
	switch level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Log logs the resolved settings in a granular way
func Log(s *Settings) {
	LogWithLogger(s, slog.Default())
}

// LogWithLogger logs the resolved settings using the provided logger
func LogWithLogger(s *Settings, logger *slog.Logger) {
	ctx := context.Background()
	logger.DebugContext(ctx, "Config: ignore_case", "value", s.IgnoreCase)
	logger.DebugContext(ctx, "Config: max_results", "value", s.MaxResults)
	logger.DebugContext(ctx, "Config: log_level", "value", s.LogLevel)
}

// SettingsLogValue returns a slog.Value for Settings
func SettingsLogValue(s Settings) slog.Value {
	return slog.GroupValue(
		slog.Bool("ignore_case", s.IgnoreCase),
		slog.Int("max_results", s.MaxResults),
		slog.String("log_level", s.LogLevel),
	)
}
