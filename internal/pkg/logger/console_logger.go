package logger

import (
	"log/slog"
	"os"
)

// ConsoleLogger logs human-readable text lines to stdout.
type ConsoleLogger struct {
	slogLogger
}

// NewConsoleLogger creates a console logger filtering below the given level.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return &ConsoleLogger{slogLogger{logger: slog.New(handler)}}
}
