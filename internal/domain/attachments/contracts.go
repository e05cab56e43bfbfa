package attachments

import (
	"context"
	"io"
)

// AttachmentService defines application-level attachment operations.
type AttachmentService interface {
	// Upload stores the file content for an existing task and persists its
	// metadata. It returns the created Attachment.
	Upload(ctx context.Context, taskID uint, fileName string, content io.Reader) (*Attachment, error)

	// ListByTaskID lists attachments belonging to a task.
	ListByTaskID(ctx context.Context, taskID uint) ([]*Attachment, error)
}

// AttachmentRepository defines the interface for Attachment persistence
type AttachmentRepository interface {
	// Create adds a new Attachment to the database
	Create(ctx context.Context, attachment *Attachment) error
	// ListByTaskID lists Attachments belonging to a task
	ListByTaskID(ctx context.Context, taskID uint) ([]*Attachment, error)
	// DeleteByTaskID deletes all Attachments belonging to a task
	DeleteByTaskID(ctx context.Context, taskID uint) error
}

// FileStore is an interface for persisting attachment content
type FileStore interface {
	// Save writes the content under a collision-free name derived from
	// fileName and returns the stored name.
	Save(ctx context.Context, fileName string, content io.Reader) (string, error)

	// Open returns a reader for previously stored content.
	Open(ctx context.Context, storedName string) (io.ReadCloser, error)

	// Delete removes stored content. Deleting a missing file is not an error.
	Delete(ctx context.Context, storedName string) error
}
