package models

import (
	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
)

// AppSettingsModel is the GORM database model for the settings singleton
type AppSettingsModel struct {
	ID                       uint   `gorm:"primaryKey"`
	Timezone                 string `gorm:"not null;type:varchar(64);default:UTC"`
	Theme                    string `gorm:"not null;type:varchar(32);default:light"`
	NotificationsEnabled     bool   `gorm:"not null;default:true"`
	NearDueHours             int    `gorm:"not null;default:24"`
	SchedulerIntervalSeconds int    `gorm:"not null;default:60"`
	NotifyURLs               string `gorm:"not null;type:text;default:''"`
}

// TableName specifies the table name for GORM
func (AppSettingsModel) TableName() string {
	return "app_settings"
}

// ToDomain converts GORM model to domain entity
func (m *AppSettingsModel) ToDomain() *settings.AppSettings {
	return &settings.AppSettings{
		ID:                       m.ID,
		Timezone:                 m.Timezone,
		Theme:                    m.Theme,
		NotificationsEnabled:     m.NotificationsEnabled,
		NearDueHours:             m.NearDueHours,
		SchedulerIntervalSeconds: m.SchedulerIntervalSeconds,
		NotifyURLs:               m.NotifyURLs,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AppSettingsModel) FromDomain(s *settings.AppSettings) {
	m.ID = s.ID
	m.Timezone = s.Timezone
	m.Theme = s.Theme
	m.NotificationsEnabled = s.NotificationsEnabled
	m.NearDueHours = s.NearDueHours
	m.SchedulerIntervalSeconds = s.SchedulerIntervalSeconds
	m.NotifyURLs = s.NotifyURLs
}
