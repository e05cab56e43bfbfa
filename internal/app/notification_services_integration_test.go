//go:build integration
// +build integration

package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDestinations(t *testing.T, services *TestServices, urls string) {
	t.Helper()

	_, err := services.SettingsService.Apply(context.Background(), &settings.Patch{NotifyURLs: &urls})
	require.NoError(t, err)
}

func TestNotificationService_TriggerDueSoon(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	setDestinations(t, services, "discord://token@channel")

	dueSoon := time.Now().UTC().Add(2 * time.Hour)
	_, err := services.TaskService.Create(ctx, &tasks.Task{Title: "Buy milk", DueAt: &dueSoon})
	require.NoError(t, err)

	// Outside the 24h default window, must not trigger
	farOut := time.Now().UTC().Add(72 * time.Hour)
	_, err = services.TaskService.Create(ctx, &tasks.Task{Title: "Far out task", DueAt: &farOut})
	require.NoError(t, err)

	sent, err := services.NotificationService.TriggerDueSoon(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Equal(t, 1, services.Notifier.Count())
	assert.Equal(t, "Buy milk", services.Notifier.Sent[0].Title)
	assert.Contains(t, services.Notifier.Sent[0].Body, "Task due soon: Buy milk")

	logList, err := services.NotificationService.ListLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logList, 1)
	assert.Equal(t, notifications.KindDueSoon, logList[0].Kind)
	assert.Equal(t, "discord://token@channel", logList[0].Destination)
}

func TestNotificationService_TriggerDueSoon_MultipleDestinations(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	setDestinations(t, services, "discord://token@channel\ntelegram://token@chat")

	dueSoon := time.Now().UTC().Add(2 * time.Hour)
	_, err := services.TaskService.Create(ctx, &tasks.Task{Title: "Buy milk", DueAt: &dueSoon})
	require.NoError(t, err)

	sent, err := services.NotificationService.TriggerDueSoon(ctx)
	require.NoError(t, err)
	// One log row per reached destination
	assert.Equal(t, 2, sent)
}

func TestNotificationService_TriggerOverdue(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	setDestinations(t, services, "discord://token@channel")

	overdue := time.Now().UTC().Add(-2 * time.Hour)
	_, err := services.TaskService.Create(ctx, &tasks.Task{Title: "Late task", DueAt: &overdue})
	require.NoError(t, err)

	sent, err := services.NotificationService.TriggerOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Equal(t, 1, services.Notifier.Count())
	assert.Contains(t, services.Notifier.Sent[0].Body, "Task overdue: Late task")
	assert.Contains(t, services.Notifier.Sent[0].Body, "Overdue by:")
}

func TestNotificationService_TriggerOverdue_SkipsCompleted(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	setDestinations(t, services, "discord://token@channel")

	overdue := time.Now().UTC().Add(-2 * time.Hour)
	task, err := services.TaskService.Create(ctx, &tasks.Task{Title: "Late task", DueAt: &overdue})
	require.NoError(t, err)
	_, err = services.TaskService.Complete(ctx, task.ID)
	require.NoError(t, err)

	sent, err := services.NotificationService.TriggerOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Zero(t, services.Notifier.Count())
}

func TestNotificationService_Trigger_DisabledOrUnconfigured(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	dueSoon := time.Now().UTC().Add(2 * time.Hour)
	_, err := services.TaskService.Create(ctx, &tasks.Task{Title: "Buy milk", DueAt: &dueSoon})
	require.NoError(t, err)

	// No destinations configured yet
	sent, err := services.NotificationService.TriggerDueSoon(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)

	// Destinations set but notifications switched off
	urls := "discord://token@channel"
	disabled := false
	_, err = services.SettingsService.Apply(ctx, &settings.Patch{NotifyURLs: &urls, NotificationsEnabled: &disabled})
	require.NoError(t, err)

	sent, err = services.NotificationService.TriggerDueSoon(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Zero(t, services.Notifier.Count())
}

func TestNotificationService_CustomTemplateRendering(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	setDestinations(t, services, "discord://token@channel")
	require.NoError(t, services.NotificationService.UpsertTemplate(ctx, notifications.KindDueSoon, "Heads up: {task_title} at {due_at}"))

	dueSoon := time.Now().UTC().Add(2 * time.Hour)
	_, err := services.TaskService.Create(ctx, &tasks.Task{Title: "Buy milk", DueAt: &dueSoon})
	require.NoError(t, err)

	sent, err := services.NotificationService.TriggerDueSoon(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, sent)

	body := services.Notifier.Sent[0].Body
	assert.True(t, strings.HasPrefix(body, "Heads up: Buy milk at "))
	assert.NotContains(t, body, "{task_title}")
}

func TestNotificationService_Trigger_SeedsDefaultTemplate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	setDestinations(t, services, "discord://token@channel")

	// First sweep writes the built-in default to the templates table
	_, err := services.NotificationService.TriggerDueSoon(ctx)
	require.NoError(t, err)

	template, err := services.NotificationService.GetTemplate(ctx, notifications.KindDueSoon)
	require.NoError(t, err)
	assert.Equal(t, notifications.DefaultDueSoonTemplate, template.Markdown)

	_, err = services.NotificationService.TriggerOverdue(ctx)
	require.NoError(t, err)

	template, err = services.NotificationService.GetTemplate(ctx, notifications.KindOverdue)
	require.NoError(t, err)
	assert.Equal(t, notifications.DefaultOverdueTemplate, template.Markdown)
}

func TestNotificationService_SendTest(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	setDestinations(t, services, "discord://token@channel")

	reached, err := services.NotificationService.SendTest(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"discord://token@channel"}, reached)

	logList, err := services.NotificationService.ListLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logList, 1)
	assert.Equal(t, notifications.KindTest, logList[0].Kind)
	assert.Nil(t, logList[0].TaskID)
}

func TestNotificationService_SendTest_NoDestinations(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	reached, err := services.NotificationService.SendTest(context.Background())
	assert.Nil(t, reached)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no notification destinations")
}

func TestNotificationService_GetTemplate_MissingYieldsEmpty(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	template, err := services.NotificationService.GetTemplate(context.Background(), notifications.KindOverdue)
	require.NoError(t, err)
	require.NotNil(t, template)
	assert.Equal(t, notifications.KindOverdue, template.Key)
	assert.Empty(t, template.Markdown)
}

func TestNotificationService_UpsertTemplate_RoundTrip(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	require.NoError(t, services.NotificationService.UpsertTemplate(ctx, notifications.KindOverdue, "# Late: {task_title}"))

	template, err := services.NotificationService.GetTemplate(ctx, notifications.KindOverdue)
	require.NoError(t, err)
	assert.Equal(t, "# Late: {task_title}", template.Markdown)
}
