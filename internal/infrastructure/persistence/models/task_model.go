package models

import (
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
)

// TaskModel is the GORM database model for tasks (infrastructure concern)
type TaskModel struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"not null;index;type:varchar(200)"`
	Description *string    `gorm:"type:text"`
	Status      string     `gorm:"not null;type:varchar(20);default:pending"`
	DueAt       *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
	CategoryID  *uint      `gorm:"index"`
	Category    *CategoryModel
	Tags        []TagModel        `gorm:"many2many:task_tags;joinForeignKey:TaskID;joinReferences:TagID;constraint:OnDelete:CASCADE"`
	Attachments []AttachmentModel `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts GORM model to domain entity
func (m *TaskModel) ToDomain() *tasks.Task {
	tagIDs := make([]uint, len(m.Tags))
	for i, tag := range m.Tags {
		tagIDs[i] = tag.ID
	}
	return &tasks.Task{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      tasks.Status(m.Status),
		DueAt:       m.DueAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CategoryID:  m.CategoryID,
		TagIDs:      tagIDs,
	}
}

// FromDomain converts domain entity to GORM model. Tag associations are
// managed separately through the repository, not through this conversion.
func (m *TaskModel) FromDomain(t *tasks.Task) {
	m.ID = t.ID
	m.Title = t.Title
	m.Description = t.Description
	m.Status = string(t.Status)
	m.DueAt = t.DueAt
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
	m.CategoryID = t.CategoryID
}

// TaskRelationshipModel is the GORM database model for links between tasks
type TaskRelationshipModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	TaskID        uint   `gorm:"not null;index"`
	RelatedTaskID uint   `gorm:"not null;index"`
	RelType       string `gorm:"not null;type:varchar(20);default:generic"`
}

// TableName specifies the table name for GORM
func (TaskRelationshipModel) TableName() string {
	return "task_relationships"
}

// ToDomain converts GORM model to domain entity
func (m *TaskRelationshipModel) ToDomain() *tasks.TaskRelationship {
	return &tasks.TaskRelationship{
		ID:            m.ID,
		TaskID:        m.TaskID,
		RelatedTaskID: m.RelatedTaskID,
		RelType:       tasks.RelationshipType(m.RelType),
	}
}

// FromDomain converts domain entity to GORM model
func (m *TaskRelationshipModel) FromDomain(r *tasks.TaskRelationship) {
	m.ID = r.ID
	m.TaskID = r.TaskID
	m.RelatedTaskID = r.RelatedTaskID
	m.RelType = string(r.RelType)
}
