package taxonomy

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Category entity groups tasks under a single label
type Category struct {
	ID   uint   `validate:"omitempty"`
	Name string `validate:"required,min=1,max=100"`
}

// Validate for validating Category struct
func (c *Category) Validate() error {
	return validateStruct(c)
}

// Tag entity labels tasks; a task may carry any number of tags
type Tag struct {
	ID   uint   `validate:"omitempty"`
	Name string `validate:"required,min=1,max=100"`
}

// Validate for validating Tag struct
func (t *Tag) Validate() error {
	return validateStruct(t)
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
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
