package notifications

import "context"

// NotificationService defines application-level notification operations.
type NotificationService interface {
	// TriggerDueSoon sends a reminder for every pending task entering the
	// near-due window and logs each delivery. It returns the number of
	// log entries written.
	TriggerDueSoon(ctx context.Context) (int, error)

	// TriggerOverdue sends a reminder for every pending task past its due
	// date and logs each delivery. It returns the number of log entries written.
	TriggerOverdue(ctx context.Context) (int, error)

	// SendTest delivers a fixed test message and returns the destinations used.
	SendTest(ctx context.Context) ([]string, error)

	// ListLogs retrieves the most recent notification logs, newest first.
	ListLogs(ctx context.Context, limit int) ([]*Log, error)

	// GetTemplate retrieves the template for a key. A missing template yields
	// one with empty markdown rather than an error.
	GetTemplate(ctx context.Context, key string) (*Template, error)

	// UpsertTemplate creates or replaces the markdown for a template key.
	UpsertTemplate(ctx context.Context, key, markdown string) error
}

// LogRepository defines the interface for notification Log persistence
type LogRepository interface {
	// Create adds a new Log to the database
	Create(ctx context.Context, log *Log) error
	// List lists the most recent Logs, newest first
	List(ctx context.Context, limit int) ([]*Log, error)
}

// TemplateRepository defines the interface for Template persistence
type TemplateRepository interface {
	// GetByKey retrieves a Template by key; a missing key returns (nil, nil)
	GetByKey(ctx context.Context, key string) (*Template, error)
	// Upsert creates or replaces the Template for a key
	Upsert(ctx context.Context, template *Template) error
}

// Notifier is an interface for delivering a message to external services
type Notifier interface {
	// Send delivers the body under the given title to every destination URL.
	// Delivery failures for individual destinations are reported as a single
	// joined error; successfully reached destinations are still returned.
	Send(ctx context.Context, destinations []string, title, body string) ([]string, error)
}
