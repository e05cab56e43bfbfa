//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
	"github.com/DarkestAbed/fridai-backend/internal/domain/views"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewService_CategorySummary(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	work, err := services.CategoryService.Create(ctx, &taxonomy.Category{Name: "Work"})
	require.NoError(t, err)
	_, err = services.CategoryService.Create(ctx, &taxonomy.Category{Name: "Home"})
	require.NoError(t, err)

	_, err = services.TaskService.Create(ctx, &tasks.Task{Title: "Prepare slides", CategoryID: &work.ID})
	require.NoError(t, err)

	items, err := services.ViewService.CategorySummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*views.CountItem{
		{Key: "Home", Count: 0},
		{Key: "Work", Count: 1},
	}, items)
}

func TestViewService_StatusSummary(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	task, err := services.TaskService.Create(ctx, &tasks.Task{Title: "Buy milk"})
	require.NoError(t, err)
	_, err = services.TaskService.Create(ctx, &tasks.Task{Title: "Walk the dog"})
	require.NoError(t, err)
	_, err = services.TaskService.Complete(ctx, task.ID)
	require.NoError(t, err)

	items, err := services.ViewService.StatusSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*views.CountItem{
		{Key: "completed", Count: 1},
		{Key: "pending", Count: 1},
	}, items)
}

func TestViewService_TagSummary(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	urgent, err := services.TagService.Create(ctx, &taxonomy.Tag{Name: "urgent"})
	require.NoError(t, err)

	_, err = services.TaskService.Create(ctx, &tasks.Task{Title: "Buy milk", TagIDs: []uint{urgent.ID}})
	require.NoError(t, err)

	items, err := services.ViewService.TagSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*views.CountItem{
		{Key: "urgent", Count: 1},
	}, items)
}
