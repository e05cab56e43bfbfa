package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"
)

// taskService implements the TaskService interface for task lifecycle operations
type taskService struct {
	taskRepository tasks.TaskRepository
	categoryRepo   taxonomy.CategoryRepository
	tagRepo        taxonomy.TagRepository
	attachmentRepo attachments.AttachmentRepository
	fileStore      attachments.FileStore
	logger         logger.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepository tasks.TaskRepository,
	categoryRepo taxonomy.CategoryRepository,
	tagRepo taxonomy.TagRepository,
	attachmentRepo attachments.AttachmentRepository,
	fileStore attachments.FileStore,
	logger logger.Logger,
) (tasks.TaskService, error) {
	return &taskService{
		taskRepository: taskRepository,
		categoryRepo:   categoryRepo,
		tagRepo:        tagRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		logger:         logger,
	}, nil
}

// Create validates referenced categories and tags and persists a new task.
// Titles are stored trimmed; blank ones fail validation.
func (s *taskService) Create(ctx context.Context, task *tasks.Task) (*tasks.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Status == "" {
		task.Status = tasks.StatusPending
	}

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if task.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *task.CategoryID); err != nil {
			return nil, fmt.Errorf("category %d not found: %w", *task.CategoryID, err)
		}
	}

	if err := s.requireTags(ctx, task.TagIDs); err != nil {
		return nil, err
	}

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Created task ", task.ID, " with title ", task.Title)
	return task, nil
}

// List retrieves tasks considering a query filter when set
func (s *taskService) List(ctx context.Context, query *tasks.TaskQuery) ([]*tasks.Task, error) {
	taskList, err := s.taskRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return taskList, nil
}

// NextWindow retrieves dated pending tasks due at or before the given horizon
func (s *taskService) NextWindow(ctx context.Context, horizon time.Time) ([]*tasks.Task, error) {
	taskList, err := s.taskRepository.ListDueBetween(ctx, time.Time{}, horizon)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return taskList, nil
}

// GetByID retrieves a task by ID
func (s *taskService) GetByID(ctx context.Context, taskID uint) (*tasks.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return task, nil
}

// Complete marks a task as completed
func (s *taskService) Complete(ctx context.Context, taskID uint) (*tasks.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	task.Status = tasks.StatusCompleted
	if err := s.taskRepository.UpdateByID(ctx, task); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Completed task ", task.ID)
	return task, nil
}

// SetDescription replaces the task description. A nil description clears it
func (s *taskService) SetDescription(ctx context.Context, taskID uint, description *string) (*tasks.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	task.Description = description
	if err := s.taskRepository.UpdateByID(ctx, task); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return task, nil
}

// SetDue replaces the task due date. A nil due date clears it
func (s *taskService) SetDue(ctx context.Context, taskID uint, dueAt *time.Time) (*tasks.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	task.DueAt = dueAt
	if err := s.taskRepository.UpdateByID(ctx, task); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return task, nil
}

// AddTags attaches existing tags to a task, keeping ones already attached
func (s *taskService) AddTags(ctx context.Context, taskID uint, tagIDs []uint) ([]uint, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.requireTags(ctx, tagIDs); err != nil {
		return nil, err
	}

	merged := task.TagIDs
	attached := make(map[uint]bool, len(merged))
	for _, id := range merged {
		attached[id] = true
	}
	for _, id := range tagIDs {
		if !attached[id] {
			attached[id] = true
			merged = append(merged, id)
		}
	}

	if err := s.taskRepository.ReplaceTags(ctx, taskID, merged); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Task ", taskID, " now carries ", len(merged), " tags")
	return merged, nil
}

// DeleteByID deletes a task along with its attachment files
func (s *taskService) DeleteByID(ctx context.Context, taskID uint) error {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	attachmentList, err := s.attachmentRepo.ListByTaskID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.taskRepository.DeleteByID(ctx, taskID); err != nil {
		return fmt.Errorf("%w", err)
	}

	// The rows are gone; file removal failures only leave orphans on disk.
	for _, attachment := range attachmentList {
		if err := s.fileStore.Delete(ctx, storedNameFromURL(attachment.URL)); err != nil {
			s.logger.Warn("failed to remove attachment file for task ", taskID, ": ", err)
		}
	}

	s.logger.Info("Deleted task ", task.ID)
	return nil
}

// requireTags verifies that every referenced tag ID exists
func (s *taskService) requireTags(ctx context.Context, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	found, err := s.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if len(found) != len(dedupe(tagIDs)) {
		return fmt.Errorf("one or more tag IDs do not exist: %v", tagIDs)
	}
	return nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	var unique []uint
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}

// relationshipService implements the RelationshipService interface for task links
type relationshipService struct {
	relationshipRepo tasks.RelationshipRepository
	taskRepository   tasks.TaskRepository
	logger           logger.Logger
}

// NewRelationshipService creates a new instance of RelationshipService
func NewRelationshipService(
	relationshipRepo tasks.RelationshipRepository,
	taskRepository tasks.TaskRepository,
	logger logger.Logger,
) (tasks.RelationshipService, error) {
	return &relationshipService{
		relationshipRepo: relationshipRepo,
		taskRepository:   taskRepository,
		logger:           logger,
	}, nil
}

// Create links two existing tasks
func (s *relationshipService) Create(ctx context.Context, rel *tasks.TaskRelationship) (*tasks.TaskRelationship, error) {
	if err := rel.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if _, err := s.taskRepository.GetByID(ctx, rel.TaskID); err != nil {
		return nil, fmt.Errorf("task %d not found: %w", rel.TaskID, err)
	}
	if _, err := s.taskRepository.GetByID(ctx, rel.RelatedTaskID); err != nil {
		return nil, fmt.Errorf("task %d not found: %w", rel.RelatedTaskID, err)
	}

	if err := s.relationshipRepo.Create(ctx, rel); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Linked task ", rel.TaskID, " to task ", rel.RelatedTaskID)
	return rel, nil
}

// ListByTaskID lists links originating from a task
func (s *relationshipService) ListByTaskID(ctx context.Context, taskID uint) ([]*tasks.TaskRelationship, error) {
	rels, err := s.relationshipRepo.ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return rels, nil
}
