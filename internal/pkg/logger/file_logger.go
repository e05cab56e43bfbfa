package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes JSON log lines to a rotating file managed by lumberjack.
type FileLogger struct {
	slogLogger
}

// NewFileLogger creates a file logger with the given rotation settings
// (sizes in MB, age in days). Rotated files are compressed.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return &FileLogger{slogLogger{logger: slog.New(handler)}}
}
