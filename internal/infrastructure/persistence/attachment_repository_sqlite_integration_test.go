//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentSqliteRepository_CreateAndList(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	task := CreateTestTask(t, "Buy milk")
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), task))

	attachment := &attachments.Attachment{
		TaskID:   task.ID,
		FileName: "notes.pdf",
		URL:      "/static/abc_notes.pdf",
	}
	require.NoError(t, ctx.AttachmentRepo.Create(context.Background(), attachment))
	assert.NotZero(t, attachment.ID)

	attachmentList, err := ctx.AttachmentRepo.ListByTaskID(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, attachmentList, 1)
	assert.Equal(t, "notes.pdf", attachmentList[0].FileName)
	assert.Equal(t, "/static/abc_notes.pdf", attachmentList[0].URL)
}

func TestAttachmentSqliteRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.AttachmentRepo.Create(context.Background(), &attachments.Attachment{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestAttachmentSqliteRepository_DeleteByTaskID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	task := CreateTestTask(t, "Buy milk")
	other := CreateTestTask(t, "Other task")
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), task))
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), other))

	for _, owner := range []uint{task.ID, other.ID} {
		attachment := &attachments.Attachment{
			TaskID:   owner,
			FileName: "notes.pdf",
			URL:      "/static/abc_notes.pdf",
		}
		require.NoError(t, ctx.AttachmentRepo.Create(context.Background(), attachment))
	}

	require.NoError(t, ctx.AttachmentRepo.DeleteByTaskID(context.Background(), task.ID))

	deletedList, err := ctx.AttachmentRepo.ListByTaskID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Empty(t, deletedList)

	keptList, err := ctx.AttachmentRepo.ListByTaskID(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Len(t, keptList, 1)
}
