package attachments

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Attachment entity describes a file stored for a task
type Attachment struct {
	ID        uint   `validate:"omitempty"`
	TaskID    uint   `validate:"required"`
	FileName  string `validate:"required,min=1,max=255"`
	URL       string `validate:"required"`
	CreatedAt time.Time
}

// Validate for validating Attachment struct
func (a *Attachment) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
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
