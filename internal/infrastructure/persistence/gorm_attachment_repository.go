package persistence

import (
	"context"
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/persistence/models"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAttachmentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAttachmentRepository creates a new GORM-based AttachmentRepository implementation
func NewGormAttachmentRepository(db *gorm.DB, logger logger.Logger) (attachments.AttachmentRepository, error) {
	return &gormAttachmentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAttachmentRepository) Create(ctx context.Context, attachment *attachments.Attachment) error {
	if err := attachment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AttachmentModel{}
	model.FromDomain(attachment)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	attachment.ID = model.ID
	attachment.CreatedAt = model.CreatedAt
	r.logger.Info("Created attachment with id ", attachment.ID)
	return nil
}

func (r *gormAttachmentRepository) ListByTaskID(ctx context.Context, taskID uint) ([]*attachments.Attachment, error) {
	var modelList []*models.AttachmentModel
	err := r.db.WithContext(ctx).Model(&models.AttachmentModel{}).
		Where("task_id = ?", taskID).
		Order("created_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attachments: %w", err)
	}

	domainList := make([]*attachments.Attachment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAttachmentRepository) DeleteByTaskID(ctx context.Context, taskID uint) error {
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&models.AttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete attachments: %w", err)
	}

	r.logger.Info("Deleted attachments for task with id ", taskID)
	return nil
}
