//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DarkestAbed/fridai-backend/internal/domain/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupViewRouter(service *MockViewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewViewHandler(service)
	r.GET("/views/categories-summary", handler.CategorySummary)
	r.GET("/views/status-summary", handler.StatusSummary)
	r.GET("/views/tags-summary", handler.TagSummary)

	return r
}

func TestViewHandler_CategorySummary_KeepsZeroCounts(t *testing.T) {
	mockService := new(MockViewService)
	r := setupViewRouter(mockService)

	mockService.On("CategorySummary", mock.Anything).Return([]*views.CountItem{
		{Key: "Work", Count: 3},
		{Key: "Home", Count: 0},
	}, nil)

	req, err := http.NewRequest("GET", "/views/categories-summary", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"key":"Work","count":3},{"key":"Home","count":0}]`, w.Body.String())
}

func TestViewHandler_StatusSummary(t *testing.T) {
	mockService := new(MockViewService)
	r := setupViewRouter(mockService)

	mockService.On("StatusSummary", mock.Anything).Return([]*views.CountItem{
		{Key: "pending", Count: 5},
	}, nil)

	req, err := http.NewRequest("GET", "/views/status-summary", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"key":"pending","count":5}]`, w.Body.String())
}

func TestViewHandler_TagSummary_Empty(t *testing.T) {
	mockService := new(MockViewService)
	r := setupViewRouter(mockService)

	mockService.On("TagSummary", mock.Anything).Return([]*views.CountItem{}, nil)

	req, err := http.NewRequest("GET", "/views/tags-summary", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
