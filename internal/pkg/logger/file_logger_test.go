//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DarkestAbed/fridai-backend/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "fridai.log")

	logger := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, logger)

	logger.Info("Delivered notification to ", "discord://token@channel")
	logger.Warn("warn message")
	logger.Error("error message")

	// Verify file exists
	_, err := os.Stat(logPath)
	assert.NoError(t, err)

	// Verify log content
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	// JSON handler output
	logOutput := string(content)
	assert.Contains(t, logOutput, "Delivered notification to discord://token@channel")
	assert.Contains(t, logOutput, "warn message")
	assert.Contains(t, logOutput, "error message")
	assert.Contains(t, logOutput, `"level":"INFO"`)
	assert.Contains(t, logOutput, `"level":"WARN"`)
	assert.Contains(t, logOutput, `"level":"ERROR"`)
}
