package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/persistence/models"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormNotificationLogRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNotificationLogRepository creates a new GORM-based LogRepository implementation
func NewGormNotificationLogRepository(db *gorm.DB, logger logger.Logger) (notifications.LogRepository, error) {
	return &gormNotificationLogRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNotificationLogRepository) Create(ctx context.Context, log *notifications.Log) error {
	if err := log.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NotificationLogModel{}
	model.FromDomain(log)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification log: %w", err)
	}

	log.ID = model.ID
	return nil
}

func (r *gormNotificationLogRepository) List(ctx context.Context, limit int) ([]*notifications.Log, error) {
	var modelList []*models.NotificationLogModel
	err := r.db.WithContext(ctx).Model(&models.NotificationLogModel{}).
		Order("sent_at desc").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notification logs: %w", err)
	}

	domainList := make([]*notifications.Log, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormTemplateRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTemplateRepository creates a new GORM-based TemplateRepository implementation
func NewGormTemplateRepository(db *gorm.DB, logger logger.Logger) (notifications.TemplateRepository, error) {
	return &gormTemplateRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTemplateRepository) GetByKey(ctx context.Context, key string) (*notifications.Template, error) {
	var model models.NotificationTemplateModel
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTemplateRepository) Upsert(ctx context.Context, template *notifications.Template) error {
	if err := template.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NotificationTemplateModel{}
	model.FromDomain(template)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"markdown"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert template: %w", err)
	}

	template.ID = model.ID
	r.logger.Info("Upserted notification template ", template.Key)
	return nil
}
