package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DarkestAbed/fridai-backend/internal/domain/views"

	"github.com/gin-gonic/gin"
)

// ViewHandler defines the interface for handling aggregate view operations
type ViewHandler interface {
	CategorySummary(ctx *gin.Context)
	StatusSummary(ctx *gin.Context)
	TagSummary(ctx *gin.Context)
}

// ViewHandler struct holds the services
type viewHandler struct {
	viewService views.ViewService
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(viewService views.ViewService) ViewHandler {
	return &viewHandler{
		viewService: viewService,
	}
}

// CategorySummary handles the GET request for the per-category task counts
// @Summary Summarize task counts per category
// @Description Fetch the number of tasks filed under each category, including categories without tasks.
// @Tags View
// @Accept json
// @Produce json
// @Success 200 {array} CountItemResponse
// @Failure 400 {object} ErrorResponse
// @Router /views/categories-summary [get]
func (handler *viewHandler) CategorySummary(ctx *gin.Context) {
	handler.respondWithCounts(ctx, handler.viewService.CategorySummary)
}

// StatusSummary handles the GET request for the per-status task counts
// @Summary Summarize task counts per status
// @Description Fetch the number of tasks in each lifecycle status.
// @Tags View
// @Accept json
// @Produce json
// @Success 200 {array} CountItemResponse
// @Failure 400 {object} ErrorResponse
// @Router /views/status-summary [get]
func (handler *viewHandler) StatusSummary(ctx *gin.Context) {
	handler.respondWithCounts(ctx, handler.viewService.StatusSummary)
}

// TagSummary handles the GET request for the per-tag task counts
// @Summary Summarize task counts per tag
// @Description Fetch the number of task associations carried by each tag, including tags without tasks.
// @Tags View
// @Accept json
// @Produce json
// @Success 200 {array} CountItemResponse
// @Failure 400 {object} ErrorResponse
// @Router /views/tags-summary [get]
func (handler *viewHandler) TagSummary(ctx *gin.Context) {
	handler.respondWithCounts(ctx, handler.viewService.TagSummary)
}

func (handler *viewHandler) respondWithCounts(ctx *gin.Context, fetch func(context.Context) ([]*views.CountItem, error)) {
	items, err := fetch(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("summary query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []CountItemResponse{}
	for _, item := range items {
		listResponse = append(listResponse, CountItemResponse{Key: item.Key, Count: item.Count})
	}

	ctx.JSON(http.StatusOK, listResponse)
}
