package persistence

import (
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the full schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.CategoryModel{},
		&models.TagModel{},
		&models.TaskModel{},
		&models.AttachmentModel{},
		&models.TaskRelationshipModel{},
		&models.NotificationLogModel{},
		&models.NotificationTemplateModel{},
		&models.AppSettingsModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
