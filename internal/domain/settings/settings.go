package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// SingletonID is the fixed row ID of the settings record.
const SingletonID uint = 1

// AppSettings entity holds the single-user runtime configuration
type AppSettings struct {
	ID                       uint   `validate:"required,eq=1"`
	Timezone                 string `validate:"required,max=64"`
	Theme                    string `validate:"required,oneof=light dark"`
	NotificationsEnabled     bool
	NearDueHours             int    `validate:"required,min=1,max=720"`
	SchedulerIntervalSeconds int    `validate:"required,min=10,max=86400"`
	NotifyURLs               string
}

// Defaults returns the settings used when no row exists yet.
func Defaults() *AppSettings {
	return &AppSettings{
		ID:                       SingletonID,
		Timezone:                 "UTC",
		Theme:                    "light",
		NotificationsEnabled:     true,
		NearDueHours:             24,
		SchedulerIntervalSeconds: 60,
		NotifyURLs:               "",
	}
}

// Validate for validating AppSettings struct
func (s *AppSettings) Validate() error {
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

	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", s.Timezone, err)
	}

	return nil
}

// NotifyURLList splits the newline-separated destination URLs, dropping blanks.
func (s *AppSettings) NotifyURLList() []string {
	var urls []string
	for _, line := range strings.Split(s.NotifyURLs, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}

// Location resolves the configured timezone, falling back to UTC.
func (s *AppSettings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
