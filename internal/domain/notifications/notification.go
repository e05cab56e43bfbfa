package notifications

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Notification kind constants
const (
	KindDueSoon = "due_soon"
	KindOverdue = "overdue"
	KindTest    = "test"
)

// Default markdown templates, seeded on first use
const (
	DefaultDueSoonTemplate = "# ⏰ Task due soon: {task_title}\n- Due at: {due_at}\n- Remaining: {remaining}\n"
	DefaultOverdueTemplate = "# ❗ Task overdue: {task_title}\n- Was due at: {due_at}\n- Overdue by: {overdue_by}\n"
)

// Log entity records a single delivered notification
type Log struct {
	ID          uint    `validate:"omitempty"`
	TaskID      *uint   `validate:"omitempty"`
	Kind        string  `validate:"required,min=1,max=50"`
	Destination string  `validate:"required,min=1,max=255"`
	Payload     string  `validate:"required"`
	SentAt      time.Time
}

// Validate for validating Log struct
func (l *Log) Validate() error {
	return validateStruct(l)
}

// Template entity holds the markdown body rendered for a notification kind
type Template struct {
	ID       uint   `validate:"omitempty"`
	Key      string `validate:"required,min=1,max=50"`
	Markdown string
}

// Validate for validating Template struct
func (t *Template) Validate() error {
	return validateStruct(t)
}

// Render substitutes {placeholder} occurrences in the template markdown.
func (t *Template) Render(values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(t.Markdown)
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
