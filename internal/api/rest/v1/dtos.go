package v1

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the generic envelope for failed requests
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the generic envelope for informational replies
type InfoResponse struct {
	Message string `json:"message"`
}

// CreateTaskRequest carries the payload for creating a task
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,notblank,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	DueAt       *time.Time `json:"due_at"`
	CategoryID  *uint      `json:"category_id"`
	TagIDs      []uint     `json:"tag_ids"`
}

// Validate for validating CreateTaskRequest struct
func (r *CreateTaskRequest) Validate() error {
	return validateRequest(r)
}

// SetDescriptionRequest carries a description replacement; null clears it
type SetDescriptionRequest struct {
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// Validate for validating SetDescriptionRequest struct
func (r *SetDescriptionRequest) Validate() error {
	return validateRequest(r)
}

// SetDueRequest carries a due date replacement; null clears it
type SetDueRequest struct {
	DueAt *time.Time `json:"due_at"`
}

// Validate for validating SetDueRequest struct
func (r *SetDueRequest) Validate() error {
	return validateRequest(r)
}

// AddTagsRequest carries the tag IDs to attach to a task
type AddTagsRequest struct {
	TagIDs []uint `json:"tag_ids" validate:"required,min=1,dive,required"`
}

// Validate for validating AddTagsRequest struct
func (r *AddTagsRequest) Validate() error {
	return validateRequest(r)
}

// CreateCategoryRequest carries the payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// Validate for validating CreateCategoryRequest struct
func (r *CreateCategoryRequest) Validate() error {
	return validateRequest(r)
}

// CreateTagRequest carries the payload for creating a tag
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// Validate for validating CreateTagRequest struct
func (r *CreateTagRequest) Validate() error {
	return validateRequest(r)
}

// CreateRelationshipRequest carries the payload for linking two tasks
type CreateRelationshipRequest struct {
	TaskID        uint   `json:"task_id" validate:"required"`
	RelatedTaskID uint   `json:"related_task_id" validate:"required"`
	RelType       string `json:"rel_type" validate:"omitempty,oneof=generic dependency"`
}

// Validate for validating CreateRelationshipRequest struct
func (r *CreateRelationshipRequest) Validate() error {
	return validateRequest(r)
}

// UpdateTemplateRequest carries a notification template body
type UpdateTemplateRequest struct {
	Markdown string `json:"markdown" validate:"required"`
}

// Validate for validating UpdateTemplateRequest struct
func (r *UpdateTemplateRequest) Validate() error {
	return validateRequest(r)
}

// UpdateSettingsRequest carries a partial settings update; absent fields stay unchanged
type UpdateSettingsRequest struct {
	Timezone                 *string `json:"timezone" validate:"omitempty,max=64"`
	Theme                    *string `json:"theme" validate:"omitempty,oneof=light dark"`
	NotificationsEnabled     *bool   `json:"notifications_enabled"`
	NearDueHours             *int    `json:"near_due_hours" validate:"omitempty,min=1,max=720"`
	SchedulerIntervalSeconds *int    `json:"scheduler_interval_seconds" validate:"omitempty,min=10,max=86400"`
	NotifyURLs               *string `json:"notify_urls"`
}

// Validate for validating UpdateSettingsRequest struct
func (r *UpdateSettingsRequest) Validate() error {
	return validateRequest(r)
}

// TaskResponse is the API representation of a task
type TaskResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	DueAt       *time.Time `json:"due_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CategoryID  *uint      `json:"category_id"`
	TagIDs      []uint     `json:"tag_ids"`
}

// CategoryResponse is the API representation of a category
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TagResponse is the API representation of a tag
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AttachmentResponse is the API representation of a task attachment
type AttachmentResponse struct {
	ID        uint      `json:"id"`
	TaskID    uint      `json:"task_id"`
	FileName  string    `json:"file_name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// RelationshipResponse is the API representation of a task link
type RelationshipResponse struct {
	ID            uint   `json:"id"`
	TaskID        uint   `json:"task_id"`
	RelatedTaskID uint   `json:"related_task_id"`
	RelType       string `json:"rel_type"`
}

// TaskTagsResponse lists the full set of tag IDs attached to a task
type TaskTagsResponse struct {
	TaskID uint   `json:"task_id"`
	TagIDs []uint `json:"tag_ids"`
}

// CountItemResponse is one key/count pair in a summary view
type CountItemResponse struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// NotificationLogResponse is the API representation of a delivered notification
type NotificationLogResponse struct {
	ID          uint      `json:"id"`
	TaskID      *uint     `json:"task_id"`
	Kind        string    `json:"kind"`
	Destination string    `json:"destination"`
	Payload     string    `json:"payload"`
	SentAt      time.Time `json:"sent_at"`
}

// TemplateResponse is the API representation of a notification template
type TemplateResponse struct {
	Key      string `json:"key"`
	Markdown string `json:"markdown"`
}

// SentResponse reports how many notifications a sweep delivered
type SentResponse struct {
	Sent int `json:"sent"`
}

// TestNotificationResponse reports which destinations a test message reached
type TestNotificationResponse struct {
	Destinations []string `json:"destinations"`
}

// SettingsResponse is the API representation of the runtime configuration
type SettingsResponse struct {
	Timezone                 string `json:"timezone"`
	Theme                    string `json:"theme"`
	NotificationsEnabled     bool   `json:"notifications_enabled"`
	NearDueHours             int    `json:"near_due_hours"`
	SchedulerIntervalSeconds int    `json:"scheduler_interval_seconds"`
	NotifyURLs               string `json:"notify_urls"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
}

func validateRequest(s interface{}) error {
	validate := validator.New()
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

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
