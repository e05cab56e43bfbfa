package tasks

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RelationshipType classifies a link between two tasks
type RelationshipType string

// Relationship type constants
const (
	RelationshipGeneric    RelationshipType = "generic"
	RelationshipDependency RelationshipType = "dependency"
)

// TaskRelationship entity links a task to a related task
type TaskRelationship struct {
	ID            uint             `validate:"omitempty"`
	TaskID        uint             `validate:"required"`
	RelatedTaskID uint             `validate:"required"`
	RelType       RelationshipType `validate:"required,oneof=generic dependency"`
}

// Validate for validating TaskRelationship struct
func (r *TaskRelationship) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

	if r.TaskID == r.RelatedTaskID {
		return fmt.Errorf("a task cannot relate to itself")
	}

	return nil
}
