//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DarkestAbed/fridai-backend/internal/domain/notifications"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupNotificationRouter(service *MockNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewNotificationHandler(service)
	r.POST("/notifications/cron", handler.RunCron)
	r.POST("/notifications/test", handler.SendTest)
	r.GET("/notifications/logs", handler.ListLogs)
	r.GET("/notifications/templates/:key", handler.GetTemplate)
	r.PATCH("/notifications/templates/:key", handler.UpdateTemplate)

	return r
}

func TestNotificationHandler_RunCron_Both(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("TriggerDueSoon", mock.Anything).Return(2, nil)
	mockService.On("TriggerOverdue", mock.Anything).Return(3, nil)

	req, err := http.NewRequest("POST", "/notifications/cron", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sent":5}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestNotificationHandler_RunCron_NearDueOnly(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("TriggerDueSoon", mock.Anything).Return(1, nil)

	req, err := http.NewRequest("POST", "/notifications/cron?mode=near_due", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sent":1}`, w.Body.String())
	mockService.AssertNotCalled(t, "TriggerOverdue")
}

func TestNotificationHandler_RunCron_InvalidMode(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	req, err := http.NewRequest("POST", "/notifications/cron?mode=yearly", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "TriggerDueSoon")
	mockService.AssertNotCalled(t, "TriggerOverdue")
}

func TestNotificationHandler_SendTest(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("SendTest", mock.Anything).Return([]string{"discord://token@channel"}, nil)

	req, err := http.NewRequest("POST", "/notifications/test", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response TestNotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, []string{"discord://token@channel"}, response.Destinations)
}

func TestNotificationHandler_ListLogs_DefaultLimit(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("ListLogs", mock.Anything, DefaultLogLimit).Return([]*notifications.Log{}, nil)

	req, err := http.NewRequest("GET", "/notifications/logs", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestNotificationHandler_ListLogs_InvalidLimit(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	req, err := http.NewRequest("GET", "/notifications/logs?limit=-3", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListLogs")
}

func TestNotificationHandler_GetTemplate_MissingYieldsEmpty(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("GetTemplate", mock.Anything, "due_soon").
		Return(&notifications.Template{Key: "due_soon", Markdown: ""}, nil)

	req, err := http.NewRequest("GET", "/notifications/templates/due_soon", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"key":"due_soon","markdown":""}`, w.Body.String())
}

func TestNotificationHandler_UpdateTemplate(t *testing.T) {
	mockService := new(MockNotificationService)
	r := setupNotificationRouter(mockService)

	mockService.On("UpsertTemplate", mock.Anything, "overdue", "# Late: {task_title}").Return(nil)

	body := []byte(`{"markdown":"# Late: {task_title}"}`)
	req, err := http.NewRequest("PATCH", "/notifications/templates/overdue", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
