package tasks

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TaskQuery is a filter for listing tasks
type TaskQuery struct {
	Search        string  `validate:"omitempty,max=200"`
	TagID         *uint   `validate:"omitempty"`
	CategoryID    *uint   `validate:"omitempty"`
	Status        *Status `validate:"omitempty,oneof=pending completed"`
	OverdueOnly   bool
	ShowCompleted bool
	Limit         int    `validate:"omitempty,min=1,max=500"`
	Offset        int    `validate:"omitempty,min=0"`
	SortBy        string `validate:"omitempty,oneof=due_at created_at updated_at title status"`
	SortOrder     string `validate:"omitempty,oneof=asc desc"`
}

// NewTaskQuery creates a TaskQuery with defaults. Tasks sort by due date with
// undated tasks last, matching the main list view ordering.
func NewTaskQuery() *TaskQuery {
	return &TaskQuery{
		ShowCompleted: true,
		SortBy:        "due_at",
		SortOrder:     "asc",
	}
}

// Validate for validating TaskQuery struct
func (q *TaskQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
