package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"
)

// StaticURLPrefix is the path under which attachment files are served.
const StaticURLPrefix = "/static/"

// attachmentService implements the AttachmentService interface for task file uploads
type attachmentService struct {
	attachmentRepo attachments.AttachmentRepository
	taskRepository tasks.TaskRepository
	fileStore      attachments.FileStore
	logger         logger.Logger
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(
	attachmentRepo attachments.AttachmentRepository,
	taskRepository tasks.TaskRepository,
	fileStore attachments.FileStore,
	logger logger.Logger,
) (attachments.AttachmentService, error) {
	return &attachmentService{
		attachmentRepo: attachmentRepo,
		taskRepository: taskRepository,
		fileStore:      fileStore,
		logger:         logger,
	}, nil
}

// Upload stores the file content for an existing task and persists its metadata
func (s *attachmentService) Upload(ctx context.Context, taskID uint, fileName string, content io.Reader) (*attachments.Attachment, error) {
	if _, err := s.taskRepository.GetByID(ctx, taskID); err != nil {
		return nil, fmt.Errorf("task %d not found: %w", taskID, err)
	}

	storedName, err := s.fileStore.Save(ctx, fileName, content)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	attachment := &attachments.Attachment{
		TaskID:   taskID,
		FileName: fileName,
		URL:      StaticURLPrefix + storedName,
	}
	if err := attachment.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		if removeErr := s.fileStore.Delete(ctx, storedName); removeErr != nil {
			s.logger.Warn("failed to remove orphaned file ", storedName, ": ", removeErr)
		}
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Attached ", fileName, " to task ", taskID)
	return attachment, nil
}

// ListByTaskID lists attachments belonging to a task
func (s *attachmentService) ListByTaskID(ctx context.Context, taskID uint) ([]*attachments.Attachment, error) {
	attachmentList, err := s.attachmentRepo.ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return attachmentList, nil
}

// storedNameFromURL recovers the on-disk name from a stored attachment URL
func storedNameFromURL(url string) string {
	return strings.TrimPrefix(url, StaticURLPrefix)
}
