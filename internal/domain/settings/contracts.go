package settings

import "context"

// Patch carries a partial settings update; nil fields stay unchanged.
type Patch struct {
	Timezone                 *string
	Theme                    *string
	NotificationsEnabled     *bool
	NearDueHours             *int
	SchedulerIntervalSeconds *int
	NotifyURLs               *string
}

// SettingsService defines application-level settings operations.
type SettingsService interface {
	// Get returns the current settings, creating the singleton row with
	// defaults when absent.
	Get(ctx context.Context) (*AppSettings, error)

	// Apply merges a partial update into the stored settings, validates the
	// result, persists it and hot-reloads the in-memory cache.
	Apply(ctx context.Context, patch *Patch) (*AppSettings, error)
}

// SettingsRepository defines the interface for AppSettings persistence
type SettingsRepository interface {
	// Load retrieves the singleton settings row, creating it with defaults
	// when absent
	Load(ctx context.Context) (*AppSettings, error)
	// Save persists the singleton settings row
	Save(ctx context.Context, settings *AppSettings) error
}
