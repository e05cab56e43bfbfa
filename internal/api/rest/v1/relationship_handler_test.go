//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRelationshipRouter(service *MockRelationshipService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewRelationshipHandler(service)
	r.POST("/relationships", handler.Create)
	r.GET("/relationships", handler.List)

	return r
}

func TestRelationshipHandler_Create_DefaultsToGeneric(t *testing.T) {
	mockService := new(MockRelationshipService)
	r := setupRelationshipRouter(mockService)

	created := &tasks.TaskRelationship{ID: 1, TaskID: 1, RelatedTaskID: 2, RelType: tasks.RelationshipGeneric}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(rel *tasks.TaskRelationship) bool {
		return rel.TaskID == 1 && rel.RelatedTaskID == 2 && rel.RelType == tasks.RelationshipGeneric
	})).Return(created, nil)

	body := []byte(`{"task_id":1,"related_task_id":2}`)
	req, err := http.NewRequest("POST", "/relationships", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response RelationshipResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "generic", response.RelType)
	mockService.AssertExpectations(t)
}

func TestRelationshipHandler_Create_InvalidRelType(t *testing.T) {
	mockService := new(MockRelationshipService)
	r := setupRelationshipRouter(mockService)

	body := []byte(`{"task_id":1,"related_task_id":2,"rel_type":"sibling"}`)
	req, err := http.NewRequest("POST", "/relationships", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestRelationshipHandler_List_RequiresTaskID(t *testing.T) {
	mockService := new(MockRelationshipService)
	r := setupRelationshipRouter(mockService)

	req, err := http.NewRequest("GET", "/relationships", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ListByTaskID")
}

func TestRelationshipHandler_List(t *testing.T) {
	mockService := new(MockRelationshipService)
	r := setupRelationshipRouter(mockService)

	mockService.On("ListByTaskID", mock.Anything, uint(1)).Return([]*tasks.TaskRelationship{
		{ID: 1, TaskID: 1, RelatedTaskID: 2, RelType: tasks.RelationshipDependency},
	}, nil)

	req, err := http.NewRequest("GET", "/relationships?task_id=1", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []RelationshipResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "dependency", response[0].RelType)
}
