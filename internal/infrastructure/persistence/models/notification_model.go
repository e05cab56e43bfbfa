package models

import (
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
)

// NotificationLogModel is the GORM database model for delivered notifications
type NotificationLogModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	TaskID      *uint     `gorm:"index"`
	Kind        string    `gorm:"not null;type:varchar(50)"`
	Destination string    `gorm:"not null;type:varchar(255)"`
	Payload     string    `gorm:"not null;type:text"`
	SentAt      time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}

// ToDomain converts GORM model to domain entity
func (m *NotificationLogModel) ToDomain() *notifications.Log {
	return &notifications.Log{
		ID:          m.ID,
		TaskID:      m.TaskID,
		Kind:        m.Kind,
		Destination: m.Destination,
		Payload:     m.Payload,
		SentAt:      m.SentAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NotificationLogModel) FromDomain(l *notifications.Log) {
	m.ID = l.ID
	m.TaskID = l.TaskID
	m.Kind = l.Kind
	m.Destination = l.Destination
	m.Payload = l.Payload
	m.SentAt = l.SentAt
}

// NotificationTemplateModel is the GORM database model for templates
type NotificationTemplateModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Key      string `gorm:"not null;uniqueIndex;type:varchar(50)"`
	Markdown string `gorm:"not null;type:text"`
}

// TableName specifies the table name for GORM
func (NotificationTemplateModel) TableName() string {
	return "notification_templates"
}

// ToDomain converts GORM model to domain entity
func (m *NotificationTemplateModel) ToDomain() *notifications.Template {
	return &notifications.Template{
		ID:       m.ID,
		Key:      m.Key,
		Markdown: m.Markdown,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NotificationTemplateModel) FromDomain(t *notifications.Template) {
	m.ID = t.ID
	m.Key = t.Key
	m.Markdown = t.Markdown
}
