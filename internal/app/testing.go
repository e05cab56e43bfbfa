//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"

	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
	"github.com/DarkestAbed/fridai-backend/internal/domain/views"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/persistence"
	"github.com/DarkestAbed/fridai-backend/internal/infrastructure/storage"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/config"
	"github.com/DarkestAbed/fridai-backend/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// RecordingNotifier captures sent notifications instead of delivering them
type RecordingNotifier struct {
	mu   sync.Mutex
	Sent []RecordedNotification
}

// RecordedNotification is one captured Send call
type RecordedNotification struct {
	Destinations []string
	Title        string
	Body         string
}

// Send records the message and reports every destination as reached
func (n *RecordingNotifier) Send(_ context.Context, destinations []string, title, body string) ([]string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Sent = append(n.Sent, RecordedNotification{Destinations: destinations, Title: title, Body: body})
	return destinations, nil
}

// Count returns the number of captured Send calls
func (n *RecordingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Sent)
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	TaskService         tasks.TaskService
	RelationshipService tasks.RelationshipService
	CategoryService     taxonomy.CategoryService
	TagService          taxonomy.TagService
	AttachmentService   attachments.AttachmentService
	ViewService         views.ViewService
	NotificationService notifications.NotificationService
	SettingsService     settings.SettingsService

	// Infrastructure
	DBContext     *persistence.TestContext
	FileStore     attachments.FileStore
	Notifier      *RecordingNotifier
	SettingsCache *settings.Cache
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Attachment files go into a per-test temp dir
	storageSettings := &config.StorageSettings{Path: t.TempDir()}
	fileStore, err := storage.NewLocalFileStore(storageSettings, logger)
	require.NoError(t, err, "Failed to create file store")

	recordingNotifier := &RecordingNotifier{}
	settingsCache := settings.NewCache()

	settingsService, err := NewSettingsService(ctx, dbContext.SettingsRepo, settingsCache, logger)
	require.NoError(t, err, "Failed to create settings service")

	taskService, err := NewTaskService(dbContext.TaskRepo, dbContext.CategoryRepo, dbContext.TagRepo, dbContext.AttachmentRepo, fileStore, logger)
	require.NoError(t, err, "Failed to create task service")

	relationshipService, err := NewRelationshipService(dbContext.RelationshipRepo, dbContext.TaskRepo, logger)
	require.NoError(t, err, "Failed to create relationship service")

	categoryService, err := NewCategoryService(dbContext.CategoryRepo, logger)
	require.NoError(t, err, "Failed to create category service")

	tagService, err := NewTagService(dbContext.TagRepo, logger)
	require.NoError(t, err, "Failed to create tag service")

	attachmentService, err := NewAttachmentService(dbContext.AttachmentRepo, dbContext.TaskRepo, fileStore, logger)
	require.NoError(t, err, "Failed to create attachment service")

	viewService, err := NewViewService(dbContext.SummaryRepo, logger)
	require.NoError(t, err, "Failed to create view service")

	notificationService, err := NewNotificationService(dbContext.TaskRepo, dbContext.LogRepo, dbContext.TemplateRepo, recordingNotifier, settingsCache, logger)
	require.NoError(t, err, "Failed to create notification service")

	return &TestServices{
		TaskService:         taskService,
		RelationshipService: relationshipService,
		CategoryService:     categoryService,
		TagService:          tagService,
		AttachmentService:   attachmentService,
		ViewService:         viewService,
		NotificationService: notificationService,
		SettingsService:     settingsService,
		DBContext:           dbContext,
		FileStore:           fileStore,
		Notifier:            recordingNotifier,
		SettingsCache:       settingsCache,
	}
}
