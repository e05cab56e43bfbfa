package tasks

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a referenced task does not exist.
var ErrNotFound = errors.New("not found")

// TaskService defines application-level task operations.
type TaskService interface {
	// Create validates referenced categories and tags and persists a new task.
	// It returns the created Task with its tag IDs populated.
	Create(ctx context.Context, task *Task) (*Task, error)

	// List retrieves tasks considering a query filter when set.
	List(ctx context.Context, query *TaskQuery) ([]*Task, error)

	// NextWindow retrieves dated tasks due at or before the given horizon,
	// ordered by due date ascending.
	NextWindow(ctx context.Context, horizon time.Time) ([]*Task, error)

	// GetByID retrieves a task by ID.
	GetByID(ctx context.Context, taskID uint) (*Task, error)

	// Complete marks a task as completed.
	Complete(ctx context.Context, taskID uint) (*Task, error)

	// SetDescription replaces the task description. A nil description clears it.
	SetDescription(ctx context.Context, taskID uint, description *string) (*Task, error)

	// SetDue replaces the task due date. A nil due date clears it.
	SetDue(ctx context.Context, taskID uint, dueAt *time.Time) (*Task, error)

	// AddTags attaches existing tags to a task, skipping ones already attached.
	// It returns the full set of tag IDs attached to the task afterwards.
	AddTags(ctx context.Context, taskID uint, tagIDs []uint) ([]uint, error)

	// DeleteByID deletes a task along with its attachments.
	DeleteByID(ctx context.Context, taskID uint) error
}

// RelationshipService defines operations on links between tasks.
type RelationshipService interface {
	// Create links two existing tasks.
	Create(ctx context.Context, rel *TaskRelationship) (*TaskRelationship, error)

	// ListByTaskID lists links originating from a task.
	ListByTaskID(ctx context.Context, taskID uint) ([]*TaskRelationship, error)
}

// TaskRepository defines the interface for Task-related persistence
type TaskRepository interface {
	// Create adds a new Task to the database
	Create(ctx context.Context, task *Task) error
	// List lists Tasks in the database with optional filter
	List(ctx context.Context, query *TaskQuery) ([]*Task, error)
	// GetByID retrieves a Task from the database by ID
	GetByID(ctx context.Context, taskID uint) (*Task, error)
	// UpdateByID updates a Task in the database by ID
	UpdateByID(ctx context.Context, task *Task) error
	// DeleteByID deletes a Task in the database by ID
	DeleteByID(ctx context.Context, taskID uint) error
	// ReplaceTags sets the task's tag associations to exactly the given IDs
	ReplaceTags(ctx context.Context, taskID uint, tagIDs []uint) error
	// ListDueBetween lists pending dated tasks with from <= due_at <= until
	ListDueBetween(ctx context.Context, from, until time.Time) ([]*Task, error)
	// ListOverdue lists pending dated tasks with due_at < now
	ListOverdue(ctx context.Context, now time.Time) ([]*Task, error)
}

// RelationshipRepository defines the interface for TaskRelationship persistence
type RelationshipRepository interface {
	// Create adds a new TaskRelationship to the database
	Create(ctx context.Context, rel *TaskRelationship) error
	// ListByTaskID lists TaskRelationships originating from a task
	ListByTaskID(ctx context.Context, taskID uint) ([]*TaskRelationship, error)
}
