package models

import (
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
)

// AttachmentModel is the GORM database model for task attachments
type AttachmentModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	TaskID    uint      `gorm:"not null;index"`
	FileName  string    `gorm:"not null;type:varchar(255)"`
	URL       string    `gorm:"not null;type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (AttachmentModel) TableName() string {
	return "attachments"
}

// ToDomain converts GORM model to domain entity
func (m *AttachmentModel) ToDomain() *attachments.Attachment {
	return &attachments.Attachment{
		ID:        m.ID,
		TaskID:    m.TaskID,
		FileName:  m.FileName,
		URL:       m.URL,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AttachmentModel) FromDomain(a *attachments.Attachment) {
	m.ID = a.ID
	m.TaskID = a.TaskID
	m.FileName = a.FileName
	m.URL = a.URL
	m.CreatedAt = a.CreatedAt
}
