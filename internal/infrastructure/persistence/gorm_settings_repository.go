package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/persistence/models"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSettingsRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSettingsRepository creates a new GORM-based SettingsRepository implementation
func NewGormSettingsRepository(db *gorm.DB, logger logger.Logger) (settings.SettingsRepository, error) {
	return &gormSettingsRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSettingsRepository) Load(ctx context.Context) (*settings.AppSettings, error) {
	var model models.AppSettingsModel
	err := r.db.WithContext(ctx).Where("id = ?", settings.SingletonID).First(&model).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to fetch settings: %w", err)
		}

		// First read creates the singleton row with defaults
		model.FromDomain(settings.Defaults())
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
		r.logger.Info("Created default settings row")
	}

	return model.ToDomain(), nil
}

func (r *gormSettingsRepository) Save(ctx context.Context, s *settings.AppSettings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AppSettingsModel{}
	model.FromDomain(s)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	r.logger.Info("Saved settings")
	return nil
}
