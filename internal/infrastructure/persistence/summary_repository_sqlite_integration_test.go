//go:build integration
// +build integration

package persistence

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

func TestSummarySqliteRepository_CountTasksByCategory_KeepsZeroCounts(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	work := &taxonomy.Category{Name: "Work"}
	home := &taxonomy.Category{Name: "Home"}
	require.NoError(t, ctx.CategoryRepo.Create(context.Background(), work))
	require.NoError(t, ctx.CategoryRepo.Create(context.Background(), home))

	categorized := CreateTestTask(t, "Prepare slides")
	categorized.CategoryID = &work.ID
	uncategorized := CreateTestTask(t, "Buy milk")

	require.NoError(t, ctx.TaskRepo.Create(context.Background(), categorized))
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), uncategorized))

	items, err := ctx.SummaryRepo.CountTasksByCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*views.CountItem{
		{Key: "Home", Count: 0},
		{Key: "Work", Count: 1},
	}, items)
}

func TestSummarySqliteRepository_CountTasksByStatus(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	pending := CreateTestTask(t, "Pending task")
	completed := CreateTestTask(t, "Completed task")
	completed.Status = tasks.StatusCompleted

	require.NoError(t, ctx.TaskRepo.Create(context.Background(), pending))
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), completed))

	items, err := ctx.SummaryRepo.CountTasksByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*views.CountItem{
		{Key: "completed", Count: 1},
		{Key: "pending", Count: 1},
	}, items)
}

func TestSummarySqliteRepository_CountTasksByTag(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	urgent := &taxonomy.Tag{Name: "urgent"}
	unused := &taxonomy.Tag{Name: "unused"}
	require.NoError(t, ctx.TagRepo.Create(context.Background(), urgent))
	require.NoError(t, ctx.TagRepo.Create(context.Background(), unused))

	first := CreateTestTask(t, "First task")
	first.TagIDs = []uint{urgent.ID}
	second := CreateTestTask(t, "Second task")
	second.TagIDs = []uint{urgent.ID}

	require.NoError(t, ctx.TaskRepo.Create(context.Background(), first))
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), second))

	items, err := ctx.SummaryRepo.CountTasksByTag(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*views.CountItem{
		{Key: "unused", Count: 0},
		{Key: "urgent", Count: 2},
	}, items)
}
