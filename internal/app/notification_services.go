package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"
)

// notificationService implements the NotificationService interface for
// delivering due-date reminders and managing their templates and logs
type notificationService struct {
	taskRepository tasks.TaskRepository
	logRepo        notifications.LogRepository
	templateRepo   notifications.TemplateRepository
	notifier       notifications.Notifier
	settingsCache  *settings.Cache
	logger         logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(
	taskRepository tasks.TaskRepository,
	logRepo notifications.LogRepository,
	templateRepo notifications.TemplateRepository,
	notifier notifications.Notifier,
	settingsCache *settings.Cache,
	logger logger.Logger,
) (notifications.NotificationService, error) {
	return &notificationService{
		taskRepository: taskRepository,
		logRepo:        logRepo,
		templateRepo:   templateRepo,
		notifier:       notifier,
		settingsCache:  settingsCache,
		logger:         logger,
	}, nil
}

// TriggerDueSoon sends a reminder for every pending task entering the near-due window
func (s *notificationService) TriggerDueSoon(ctx context.Context) (int, error) {
	current := s.settingsCache.Current()
	destinations := current.NotifyURLList()
	if !current.NotificationsEnabled || len(destinations) == 0 {
		return 0, nil
	}

	now := time.Now().In(current.Location())
	until := now.Add(time.Duration(current.NearDueHours) * time.Hour)

	taskList, err := s.taskRepository.ListDueBetween(ctx, now, until)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	template, err := s.templateFor(ctx, notifications.KindDueSoon, notifications.DefaultDueSoonTemplate)
	if err != nil {
		return 0, err
	}

	sent := 0
	var sendErrs []error
	for _, task := range taskList {
		body := template.Render(map[string]string{
			"task_title": task.Title,
			"due_at":     task.DueAt.In(current.Location()).Format(time.RFC3339),
			"remaining":  task.DueAt.Sub(now).Round(time.Minute).String(),
		})

		count, err := s.deliver(ctx, task, notifications.KindDueSoon, destinations, body)
		sent += count
		if err != nil {
			sendErrs = append(sendErrs, err)
		}
	}

	return sent, errors.Join(sendErrs...)
}

// TriggerOverdue sends a reminder for every pending task past its due date
func (s *notificationService) TriggerOverdue(ctx context.Context) (int, error) {
	current := s.settingsCache.Current()
	destinations := current.NotifyURLList()
	if !current.NotificationsEnabled || len(destinations) == 0 {
		return 0, nil
	}

	now := time.Now().In(current.Location())

	taskList, err := s.taskRepository.ListOverdue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	template, err := s.templateFor(ctx, notifications.KindOverdue, notifications.DefaultOverdueTemplate)
	if err != nil {
		return 0, err
	}

	sent := 0
	var sendErrs []error
	for _, task := range taskList {
		body := template.Render(map[string]string{
			"task_title": task.Title,
			"due_at":     task.DueAt.In(current.Location()).Format(time.RFC3339),
			"overdue_by": now.Sub(*task.DueAt).Round(time.Minute).String(),
		})

		count, err := s.deliver(ctx, task, notifications.KindOverdue, destinations, body)
		sent += count
		if err != nil {
			sendErrs = append(sendErrs, err)
		}
	}

	return sent, errors.Join(sendErrs...)
}

// SendTest delivers a fixed test message and returns the destinations reached
func (s *notificationService) SendTest(ctx context.Context) ([]string, error) {
	current := s.settingsCache.Current()
	destinations := current.NotifyURLList()
	if len(destinations) == 0 {
		return nil, fmt.Errorf("no notification destinations configured")
	}

	body := "This is a test notification. If you can read this, delivery works."
	reached, sendErr := s.notifier.Send(ctx, destinations, "Test notification", body)

	for _, destination := range reached {
		log := &notifications.Log{
			Kind:        notifications.KindTest,
			Destination: destination,
			Payload:     body,
			SentAt:      time.Now().In(current.Location()),
		}
		if err := s.logRepo.Create(ctx, log); err != nil {
			return reached, fmt.Errorf("%w", err)
		}
	}

	return reached, sendErr
}

// ListLogs retrieves the most recent notification logs, newest first
func (s *notificationService) ListLogs(ctx context.Context, limit int) ([]*notifications.Log, error) {
	logs, err := s.logRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return logs, nil
}

// GetTemplate retrieves the template for a key; a missing key yields empty markdown
func (s *notificationService) GetTemplate(ctx context.Context, key string) (*notifications.Template, error) {
	template, err := s.templateRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if template == nil {
		return &notifications.Template{Key: key}, nil
	}
	return template, nil
}

// UpsertTemplate creates or replaces the markdown for a template key
func (s *notificationService) UpsertTemplate(ctx context.Context, key, markdown string) error {
	template := &notifications.Template{Key: key, Markdown: markdown}
	if err := template.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.templateRepo.Upsert(ctx, template); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Updated notification template ", key)
	return nil
}

// deliver fans one rendered message out to every destination and logs each
// successful delivery. It returns the number of log entries written.
func (s *notificationService) deliver(ctx context.Context, task *tasks.Task, kind string, destinations []string, body string) (int, error) {
	title := task.Title
	reached, sendErr := s.notifier.Send(ctx, destinations, title, body)

	sent := 0
	for _, destination := range reached {
		taskID := task.ID
		log := &notifications.Log{
			TaskID:      &taskID,
			Kind:        kind,
			Destination: destination,
			Payload:     body,
			SentAt:      time.Now(),
		}
		if err := s.logRepo.Create(ctx, log); err != nil {
			return sent, fmt.Errorf("%w", err)
		}
		sent++
	}

	return sent, sendErr
}

// templateFor loads the stored template for a key. When none has been saved
// yet the built-in default is seeded so later template reads return it.
// A saved-but-empty template is rendered with the default without overwriting it.
func (s *notificationService) templateFor(ctx context.Context, key, fallback string) (*notifications.Template, error) {
	template, err := s.templateRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if template == nil {
		template = &notifications.Template{Key: key, Markdown: fallback}
		if err := s.templateRepo.Upsert(ctx, template); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		s.logger.Info("Seeded default notification template ", key)
		return template, nil
	}
	if template.Markdown == "" {
		return &notifications.Template{Key: key, Markdown: fallback}, nil
	}
	return template, nil
}
