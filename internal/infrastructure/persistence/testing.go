//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
	"github.com/DarkestAbed/fridai-backend/internal/domain/views"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/config"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB               *gorm.DB
	TaskRepo         tasks.TaskRepository
	RelationshipRepo tasks.RelationshipRepository
	CategoryRepo     taxonomy.CategoryRepository
	TagRepo          taxonomy.TagRepository
	AttachmentRepo   attachments.AttachmentRepository
	LogRepo          notifications.LogRepository
	TemplateRepo     notifications.TemplateRepository
	SettingsRepo     settings.SettingsRepository
	SummaryRepo      views.SummaryRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var dbSettings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		dbSettings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		dbSettings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(dbSettings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	taskRepo, err := NewGormTaskRepository(db, log)
	require.NoError(t, err)

	relationshipRepo, err := NewGormRelationshipRepository(db, log)
	require.NoError(t, err)

	categoryRepo, err := NewGormCategoryRepository(db, log)
	require.NoError(t, err)

	tagRepo, err := NewGormTagRepository(db, log)
	require.NoError(t, err)

	attachmentRepo, err := NewGormAttachmentRepository(db, log)
	require.NoError(t, err)

	logRepo, err := NewGormNotificationLogRepository(db, log)
	require.NoError(t, err)

	templateRepo, err := NewGormTemplateRepository(db, log)
	require.NoError(t, err)

	settingsRepo, err := NewGormSettingsRepository(db, log)
	require.NoError(t, err)

	summaryRepo, err := NewGormSummaryRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:               db,
		TaskRepo:         taskRepo,
		RelationshipRepo: relationshipRepo,
		CategoryRepo:     categoryRepo,
		TagRepo:          tagRepo,
		AttachmentRepo:   attachmentRepo,
		LogRepo:          logRepo,
		TemplateRepo:     templateRepo,
		SettingsRepo:     settingsRepo,
		SummaryRepo:      summaryRepo,
	}
}

// CreateTestTask creates a pending task with default values
func CreateTestTask(t *testing.T, title string) *tasks.Task {
	t.Helper()

	if title == "" {
		title = "test-task"
	}

	return &tasks.Task{
		Title:  title,
		Status: tasks.StatusPending,
	}
}

// CreateTestTaskWithDue creates a pending task due at the given time
func CreateTestTaskWithDue(t *testing.T, title string, dueAt time.Time) *tasks.Task {
	t.Helper()

	task := CreateTestTask(t, title)
	task.DueAt = &dueAt
	return task
}
