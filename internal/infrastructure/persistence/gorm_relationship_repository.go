package persistence

import (
	"context"
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/persistence/models"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormRelationshipRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRelationshipRepository creates a new GORM-based RelationshipRepository implementation
func NewGormRelationshipRepository(db *gorm.DB, logger logger.Logger) (tasks.RelationshipRepository, error) {
	return &gormRelationshipRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRelationshipRepository) Create(ctx context.Context, rel *tasks.TaskRelationship) error {
	if err := rel.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaskRelationshipModel{}
	model.FromDomain(rel)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create task relationship: %w", err)
	}

	rel.ID = model.ID
	r.logger.Info("Created task relationship with id ", rel.ID)
	return nil
}

func (r *gormRelationshipRepository) ListByTaskID(ctx context.Context, taskID uint) ([]*tasks.TaskRelationship, error) {
	var modelList []*models.TaskRelationshipModel
	err := r.db.WithContext(ctx).Model(&models.TaskRelationshipModel{}).
		Where("task_id = ?", taskID).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task relationships: %w", err)
	}

	domainList := make([]*tasks.TaskRelationship, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
