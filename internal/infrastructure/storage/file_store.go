package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/config"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"

	"github.com/google/uuid"
)

type localFileStore struct {
	root   string
	logger logger.Logger
}

// NewLocalFileStore creates a FileStore backed by a directory on disk,
// creating the directory when absent. Attachment content lives on a
// volume-mounted path next to the SQLite file.
func NewLocalFileStore(settings *config.StorageSettings, logger logger.Logger) (attachments.FileStore, error) {
	if err := os.MkdirAll(settings.Path, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", settings.Path, err)
	}

	return &localFileStore{
		root:   settings.Path,
		logger: logger,
	}, nil
}

func (s *localFileStore) Save(ctx context.Context, fileName string, content io.Reader) (string, error) {
	// Strip any client-supplied path, then prefix with a UUID so repeated
	// uploads of the same filename never clobber each other.
	safeName := filepath.Base(fileName)
	if safeName == "." || safeName == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}
	storedName := uuid.NewString() + "_" + safeName

	target, err := os.OpenFile(filepath.Join(s.root, storedName), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", storedName, err)
	}
	defer func() {
		if err := target.Close(); err != nil {
			s.logger.Warn("failed to close stored file ", storedName, ": ", err)
		}
	}()

	if _, err := io.Copy(target, content); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", storedName, err)
	}

	s.logger.Info("Stored attachment file ", storedName)
	return storedName, nil
}

func (s *localFileStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	safeName := filepath.Base(storedName)
	f, err := os.Open(filepath.Join(s.root, safeName))
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", safeName, err)
	}
	return f, nil
}

func (s *localFileStore) Delete(ctx context.Context, storedName string) error {
	safeName := filepath.Base(storedName)
	if err := os.Remove(filepath.Join(s.root, safeName)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", safeName, err)
	}

	s.logger.Info("Deleted attachment file ", safeName)
	return nil
}
