package commands

import (
	"context"
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/persistence"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Sample data seeded by the bootstrap command.
var (
	bootstrapCategories = []string{"Work", "Home", "Errands"}
	bootstrapTags       = []string{"urgent", "low-prio", "next"}
)

const bootstrapTaskCount = 25

// DatabaseCommandHandler encapsulates logic for database maintenance via CLI.
type DatabaseCommandHandler struct {
	logger logger.Logger
}

// NewDatabaseCommandHandler initializes and returns a DatabaseCommandHandler
// instance with a configured logger.
func NewDatabaseCommandHandler() (*DatabaseCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DatabaseCommandHandler{
		logger: loggerInstance,
	}, nil
}

// MigrateCmd creates or updates the database schema
func (commandHandler *DatabaseCommandHandler) MigrateCmd(_ *cobra.Command, _ []string) {
	db, err := commandHandler.openDatabase()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := persistence.Migrate(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Database migrations completed successfully")
}

// BootstrapCmd seeds sample categories, tags and tasks into the database
func (commandHandler *DatabaseCommandHandler) BootstrapCmd(_ *cobra.Command, _ []string) {
	db, err := commandHandler.openDatabase()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := persistence.Migrate(db); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx := context.Background()

	categoryRepo, err := persistence.NewGormCategoryRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	tagRepo, err := persistence.NewGormTagRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	taskRepo, err := persistence.NewGormTaskRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var categories []*taxonomy.Category
	for _, name := range bootstrapCategories {
		category := &taxonomy.Category{Name: name}
		if err := categoryRepo.Create(ctx, category); err != nil {
			commandHandler.logger.Error("failed to seed category ", name, ": ", err)
			return
		}
		categories = append(categories, category)
	}

	var tags []*taxonomy.Tag
	for _, name := range bootstrapTags {
		tag := &taxonomy.Tag{Name: name}
		if err := tagRepo.Create(ctx, tag); err != nil {
			commandHandler.logger.Error("failed to seed tag ", name, ": ", err)
			return
		}
		tags = append(tags, tag)
	}

	// Every other task carries the first tag, matching a mixed-looking board.
	for i := 0; i < bootstrapTaskCount; i++ {
		categoryID := categories[i%len(categories)].ID
		task := &tasks.Task{
			Title:      fmt.Sprintf("Sample Task %d", i),
			Status:     tasks.StatusPending,
			CategoryID: &categoryID,
		}
		if i%2 == 0 {
			task.TagIDs = []uint{tags[0].ID}
		}
		if err := taskRepo.Create(ctx, task); err != nil {
			commandHandler.logger.Error("failed to seed task ", task.Title, ": ", err)
			return
		}
	}

	commandHandler.logger.Info("Bootstrap complete: ", len(categories), " categories, ", len(tags), " tags, ", bootstrapTaskCount, " tasks")
}

func (commandHandler *DatabaseCommandHandler) openDatabase() (*gorm.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return db, nil
}

// InitDatabaseCommands registers database maintenance commands
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	handler, err := NewDatabaseCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create database command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var bootstrapCmd = &cobra.Command{
		Use:   "bootstrap",
		Short: "Seed sample categories, tags and tasks",
		Run:   handler.BootstrapCmd,
	}
	rootCmd.AddCommand(bootstrapCmd)

	return nil
}
