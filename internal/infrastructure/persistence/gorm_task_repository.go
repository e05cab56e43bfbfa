package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/persistence/models"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTaskRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTaskRepository creates a new GORM-based TaskRepository implementation
func NewGormTaskRepository(db *gorm.DB, logger logger.Logger) (tasks.TaskRepository, error) {
	return &gormTaskRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTaskRepository) Create(ctx context.Context, task *tasks.Task) error {
	// Validate domain entity (business rules)
	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaskModel{}
	model.FromDomain(task)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if len(task.TagIDs) > 0 {
			tagRefs := tagModelRefs(task.TagIDs)
			if err := tx.Model(model).Association("Tags").Append(tagRefs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	task.ID = model.ID
	task.CreatedAt = model.CreatedAt
	task.UpdatedAt = model.UpdatedAt

	r.logger.Info("Created task with id ", task.ID)
	return nil
}

func (r *gormTaskRepository) List(ctx context.Context, query *tasks.TaskQuery) ([]*tasks.Task, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.TaskModel
	dbQuery := r.db.WithContext(ctx).Model(&models.TaskModel{}).Preload("Tags")

	// Apply filters
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		dbQuery = dbQuery.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
			pattern, pattern,
		)
	}
	if query.CategoryID != nil {
		dbQuery = dbQuery.Where("category_id = ?", *query.CategoryID)
	}
	if query.Status != nil {
		dbQuery = dbQuery.Where("status = ?", string(*query.Status))
	}
	if !query.ShowCompleted {
		dbQuery = dbQuery.Where("status <> ?", string(tasks.StatusCompleted))
	}
	if query.OverdueOnly {
		dbQuery = dbQuery.Where("due_at IS NOT NULL AND due_at < ?", time.Now().UTC())
	}
	if query.TagID != nil {
		dbQuery = dbQuery.
			Joins("JOIN task_tags ON task_tags.task_id = tasks.id").
			Where("task_tags.tag_id = ?", *query.TagID)
	}

	// Sorting: undated tasks sort after dated ones on the due date view
	if query.SortBy == "due_at" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order("due_at IS NULL").Order("due_at " + order)
	} else if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	domainList := make([]*tasks.Task, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTaskRepository) GetByID(ctx context.Context, taskID uint) (*tasks.Task, error) {
	var model models.TaskModel
	if err := r.db.WithContext(ctx).Preload("Tags").Where("id = ?", taskID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task with ID %d %w", taskID, tasks.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTaskRepository) UpdateByID(ctx context.Context, task *tasks.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaskModel{}
	model.FromDomain(task)

	if err := r.db.WithContext(ctx).Omit("Tags", "Attachments").Save(model).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	r.logger.Info("Updated task with id ", task.ID)
	return nil
}

func (r *gormTaskRepository) DeleteByID(ctx context.Context, taskID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.TaskModel{ID: taskID}
		if err := tx.Model(&model).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", taskID).Delete(&models.AttachmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ? OR related_task_id = ?", taskID, taskID).
			Delete(&models.TaskRelationshipModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TaskModel{}, taskID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	r.logger.Info("Deleted task with id ", taskID)
	return nil
}

func (r *gormTaskRepository) ReplaceTags(ctx context.Context, taskID uint, tagIDs []uint) error {
	model := models.TaskModel{ID: taskID}
	tagRefs := tagModelRefs(tagIDs)

	if err := r.db.WithContext(ctx).Model(&model).Association("Tags").Replace(tagRefs); err != nil {
		return fmt.Errorf("failed to replace tags for task %d: %w", taskID, err)
	}

	r.logger.Info("Replaced tags for task with id ", taskID)
	return nil
}

func (r *gormTaskRepository) ListDueBetween(ctx context.Context, from, until time.Time) ([]*tasks.Task, error) {
	return r.listPendingDated(ctx, "due_at >= ? AND due_at <= ?", from, until)
}

func (r *gormTaskRepository) ListOverdue(ctx context.Context, now time.Time) ([]*tasks.Task, error) {
	return r.listPendingDated(ctx, "due_at < ?", now)
}

func (r *gormTaskRepository) listPendingDated(ctx context.Context, cond string, args ...interface{}) ([]*tasks.Task, error) {
	var modelList []*models.TaskModel
	err := r.db.WithContext(ctx).Model(&models.TaskModel{}).
		Preload("Tags").
		Where("status <> ?", string(tasks.StatusCompleted)).
		Where("due_at IS NOT NULL").
		Where(cond, args...).
		Order("due_at asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dated tasks: %w", err)
	}

	domainList := make([]*tasks.Task, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func tagModelRefs(tagIDs []uint) []models.TagModel {
	refs := make([]models.TagModel, len(tagIDs))
	for i, id := range tagIDs {
		refs[i] = models.TagModel{ID: id}
	}
	return refs
}
