//go:build unit
// +build unit

package v1

import (
	"context"
	"io"
	"time"

	"github.com/DarkestAbed/fridai-backend/internal/domain/attachments"
	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"
	"github.com/DarkestAbed/fridai-backend/internal/domain/settings"
	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"
	"github.com/DarkestAbed/fridai-backend/internal/domain/taxonomy"
	"github.com/DarkestAbed/fridai-backend/internal/domain/views"

	"github.com/stretchr/testify/mock"
)

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, task *tasks.Task) (*tasks.Task, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context, query *tasks.TaskQuery) ([]*tasks.Task, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tasks.Task), args.Error(1)
}

func (m *MockTaskService) NextWindow(ctx context.Context, horizon time.Time) ([]*tasks.Task, error) {
	args := m.Called(ctx, horizon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tasks.Task), args.Error(1)
}

func (m *MockTaskService) GetByID(ctx context.Context, taskID uint) (*tasks.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) Complete(ctx context.Context, taskID uint) (*tasks.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) SetDescription(ctx context.Context, taskID uint, description *string) (*tasks.Task, error) {
	args := m.Called(ctx, taskID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) SetDue(ctx context.Context, taskID uint, dueAt *time.Time) (*tasks.Task, error) {
	args := m.Called(ctx, taskID, dueAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) AddTags(ctx context.Context, taskID uint, tagIDs []uint) ([]uint, error) {
	args := m.Called(ctx, taskID, tagIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockTaskService) DeleteByID(ctx context.Context, taskID uint) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

// MockRelationshipService is a mock implementation of RelationshipService
type MockRelationshipService struct {
	mock.Mock
}

func (m *MockRelationshipService) Create(ctx context.Context, rel *tasks.TaskRelationship) (*tasks.TaskRelationship, error) {
	args := m.Called(ctx, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.TaskRelationship), args.Error(1)
}

func (m *MockRelationshipService) ListByTaskID(ctx context.Context, taskID uint) ([]*tasks.TaskRelationship, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tasks.TaskRelationship), args.Error(1)
}

// MockCategoryService is a mock implementation of CategoryService
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Create(ctx context.Context, category *taxonomy.Category) (*taxonomy.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Category), args.Error(1)
}

func (m *MockCategoryService) List(ctx context.Context, nameFilter string) ([]*taxonomy.Category, error) {
	args := m.Called(ctx, nameFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*taxonomy.Category), args.Error(1)
}

// MockTagService is a mock implementation of TagService
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) Create(ctx context.Context, tag *taxonomy.Tag) (*taxonomy.Tag, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Tag), args.Error(1)
}

func (m *MockTagService) List(ctx context.Context, nameFilter string) ([]*taxonomy.Tag, error) {
	args := m.Called(ctx, nameFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*taxonomy.Tag), args.Error(1)
}

// MockAttachmentService is a mock implementation of AttachmentService
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Upload(ctx context.Context, taskID uint, fileName string, content io.Reader) (*attachments.Attachment, error) {
	args := m.Called(ctx, taskID, fileName, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attachments.Attachment), args.Error(1)
}

func (m *MockAttachmentService) ListByTaskID(ctx context.Context, taskID uint) ([]*attachments.Attachment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attachments.Attachment), args.Error(1)
}

// MockViewService is a mock implementation of ViewService
type MockViewService struct {
	mock.Mock
}

func (m *MockViewService) CategorySummary(ctx context.Context) ([]*views.CountItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*views.CountItem), args.Error(1)
}

func (m *MockViewService) StatusSummary(ctx context.Context) ([]*views.CountItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*views.CountItem), args.Error(1)
}

func (m *MockViewService) TagSummary(ctx context.Context) ([]*views.CountItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*views.CountItem), args.Error(1)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) TriggerDueSoon(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) TriggerOverdue(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) SendTest(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockNotificationService) ListLogs(ctx context.Context, limit int) ([]*notifications.Log, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notifications.Log), args.Error(1)
}

func (m *MockNotificationService) GetTemplate(ctx context.Context, key string) (*notifications.Template, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Template), args.Error(1)
}

func (m *MockNotificationService) UpsertTemplate(ctx context.Context, key, markdown string) error {
	args := m.Called(ctx, key, markdown)
	return args.Error(0)
}

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context) (*settings.AppSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.AppSettings), args.Error(1)
}

func (m *MockSettingsService) Apply(ctx context.Context, patch *settings.Patch) (*settings.AppSettings, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.AppSettings), args.Error(1)
}
