//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLogSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	log := &notifications.Log{
		Kind:        notifications.KindDueSoon,
		Destination: "discord://token@channel",
		Payload:     "# Task due soon",
		SentAt:      time.Now().UTC(),
	}

	err := ctx.LogRepo.Create(context.Background(), log)
	require.NoError(t, err)
	assert.NotZero(t, log.ID)
}

func TestNotificationLogSqliteRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.LogRepo.Create(context.Background(), &notifications.Log{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestNotificationLogSqliteRepository_List_NewestFirstWithLimit(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	base := time.Now().UTC().Add(-1 * time.Hour)
	for i := 0; i < 3; i++ {
		log := &notifications.Log{
			Kind:        notifications.KindOverdue,
			Destination: "discord://token@channel",
			Payload:     "# Task overdue",
			SentAt:      base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, ctx.LogRepo.Create(context.Background(), log))
	}

	logList, err := ctx.LogRepo.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, logList, 2)
	assert.True(t, logList[0].SentAt.After(logList[1].SentAt))
}

func TestTemplateSqliteRepository_GetByKey_Missing(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	template, err := ctx.TemplateRepo.GetByKey(context.Background(), notifications.KindDueSoon)
	require.NoError(t, err)
	assert.Nil(t, template)
}

func TestTemplateSqliteRepository_Upsert_CreateThenReplace(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	template := &notifications.Template{Key: notifications.KindOverdue, Markdown: "# Late: {task_title}"}
	require.NoError(t, ctx.TemplateRepo.Upsert(context.Background(), template))

	fetchedTemplate, err := ctx.TemplateRepo.GetByKey(context.Background(), notifications.KindOverdue)
	require.NoError(t, err)
	require.NotNil(t, fetchedTemplate)
	assert.Equal(t, "# Late: {task_title}", fetchedTemplate.Markdown)

	replacement := &notifications.Template{Key: notifications.KindOverdue, Markdown: "# Still late: {task_title}"}
	require.NoError(t, ctx.TemplateRepo.Upsert(context.Background(), replacement))

	fetchedTemplate, err = ctx.TemplateRepo.GetByKey(context.Background(), notifications.KindOverdue)
	require.NoError(t, err)
	require.NotNil(t, fetchedTemplate)
	assert.Equal(t, "# Still late: {task_title}", fetchedTemplate.Markdown)
}
