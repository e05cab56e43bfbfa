//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Get_CreatesDefaults(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	current, err := services.SettingsService.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.Defaults(), current)
}

func TestSettingsService_Apply_MergesPatch(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	theme := "dark"
	nearDueHours := 48
	updated, err := services.SettingsService.Apply(context.Background(), &settings.Patch{
		Theme:        &theme,
		NearDueHours: &nearDueHours,
	})
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)
	assert.Equal(t, 48, updated.NearDueHours)
	// Untouched fields keep their values
	assert.Equal(t, "UTC", updated.Timezone)

	reloaded, err := services.SettingsService.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dark", reloaded.Theme)
}

func TestSettingsService_Apply_HotReloadsCache(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	interval := 120
	_, err := services.SettingsService.Apply(context.Background(), &settings.Patch{SchedulerIntervalSeconds: &interval})
	require.NoError(t, err)

	assert.Equal(t, 120, services.SettingsCache.Current().SchedulerIntervalSeconds)
}

func TestSettingsService_Apply_RejectsInvalidPatch(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	timezone := "Not/AZone"
	updated, err := services.SettingsService.Apply(context.Background(), &settings.Patch{Timezone: &timezone})
	assert.Nil(t, updated)
	assert.Error(t, err)

	// The stored settings stay untouched
	current, err := services.SettingsService.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "UTC", current.Timezone)
}
