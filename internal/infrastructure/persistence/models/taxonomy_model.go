package models

import (
	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
)

// CategoryModel is the GORM database model for categories
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null;uniqueIndex;type:varchar(100)"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts GORM model to domain entity
func (m *CategoryModel) ToDomain() *taxonomy.Category {
	return &taxonomy.Category{
		ID:   m.ID,
		Name: m.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CategoryModel) FromDomain(c *taxonomy.Category) {
	m.ID = c.ID
	m.Name = c.Name
}

// TagModel is the GORM database model for tags
type TagModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null;uniqueIndex;type:varchar(100)"`
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}

// ToDomain converts GORM model to domain entity
func (m *TagModel) ToDomain() *taxonomy.Tag {
	return &taxonomy.Tag{
		ID:   m.ID,
		Name: m.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TagModel) FromDomain(t *taxonomy.Tag) {
	m.ID = t.ID
	m.Name = t.Name
}
