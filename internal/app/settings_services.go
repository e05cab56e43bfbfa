package app

import (
	"context"
	"fmt"

	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/logger"
)

// settingsService implements the SettingsService interface for the
// single-row runtime configuration
type settingsService struct {
	settingsRepo  settings.SettingsRepository
	settingsCache *settings.Cache
	logger        logger.Logger
}

// NewSettingsService creates a new instance of SettingsService and primes
// the in-memory cache from the database.
func NewSettingsService(
	ctx context.Context,
	settingsRepo settings.SettingsRepository,
	settingsCache *settings.Cache,
	logger logger.Logger,
) (settings.SettingsService, error) {
	service := &settingsService{
		settingsRepo:  settingsRepo,
		settingsCache: settingsCache,
		logger:        logger,
	}

	current, err := settingsRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	settingsCache.Reload(current)

	return service, nil
}

// Get returns the current settings, creating the singleton row with defaults when absent
func (s *settingsService) Get(ctx context.Context) (*settings.AppSettings, error) {
	current, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return current, nil
}

// Apply merges a partial update into the stored settings, validates the
// result, persists it and hot-reloads the in-memory cache
func (s *settingsService) Apply(ctx context.Context, patch *settings.Patch) (*settings.AppSettings, error) {
	current, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if patch.Timezone != nil {
		current.Timezone = *patch.Timezone
	}
	if patch.Theme != nil {
		current.Theme = *patch.Theme
	}
	if patch.NotificationsEnabled != nil {
		current.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.NearDueHours != nil {
		current.NearDueHours = *patch.NearDueHours
	}
	if patch.SchedulerIntervalSeconds != nil {
		current.SchedulerIntervalSeconds = *patch.SchedulerIntervalSeconds
	}
	if patch.NotifyURLs != nil {
		current.NotifyURLs = *patch.NotifyURLs
	}

	if err := current.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.settingsRepo.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.settingsCache.Reload(current)

	s.logger.Info("Applied settings update")
	return current, nil
}
