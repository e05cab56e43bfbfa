package tasks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Status is the lifecycle state of a task
type Status string

// Task status constants
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Task entity
type Task struct {
	ID          uint       `validate:"omitempty"`
	Title       string     `validate:"required,notblank,max=200"`
	Description *string    `validate:"omitempty,max=10000"`
	Status      Status     `validate:"required,oneof=pending completed"`
	DueAt       *time.Time `validate:"omitempty"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CategoryID  *uint
	TagIDs      []uint
}

// Validate for validating Task struct. Whitespace-only titles are rejected,
// not just empty ones.
func (t *Task) Validate() error {
	validate := validator.New()
	registerNotBlank(validate)

	err := validate.Struct(t)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// registerNotBlank adds the notblank rule: at least one non-whitespace character.
func registerNotBlank(validate *validator.Validate) {
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// IsOverdue reports whether the task is past due and still pending at the given instant.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusCompleted || t.DueAt == nil {
		return false
	}
	return t.DueAt.Before(now)
}
