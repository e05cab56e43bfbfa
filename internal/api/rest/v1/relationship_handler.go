package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/DarkestAbed/fridai-backend/internal/domain/tasks"

	"github.com/gin-gonic/gin"
)

// RelationshipHandler defines the interface for handling task link operations
type RelationshipHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
}

// RelationshipHandler struct holds the services
type relationshipHandler struct {
	relationshipService tasks.RelationshipService
}

// NewRelationshipHandler creates a new RelationshipHandler
func NewRelationshipHandler(relationshipService tasks.RelationshipService) RelationshipHandler {
	return &relationshipHandler{
		relationshipService: relationshipService,
	}
}

// Create handles the POST request to link two tasks
// @Summary Link two tasks
// @Description Create a typed link between two existing tasks. The type defaults to generic.
// @Tags Relationship
// @Accept json
// @Produce json
// @Param requestBody body CreateRelationshipRequest true "Relationship Data"
// @Success 201 {object} RelationshipResponse
// @Failure 400 {object} ErrorResponse
// @Router /relationships [post]
func (handler *relationshipHandler) Create(ctx *gin.Context) {
	var request CreateRelationshipRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid relationship data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	relType := tasks.RelationshipType(request.RelType)
	if request.RelType == "" {
		relType = tasks.RelationshipGeneric
	}

	rel := &tasks.TaskRelationship{
		TaskID:        request.TaskID,
		RelatedTaskID: request.RelatedTaskID,
		RelType:       relType,
	}

	created, err := handler.relationshipService.Create(ctx, rel)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating relationship: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toRelationshipResponse(created))
}

// List handles the GET request to list links originating from a task
// @Summary List task links
// @Description Fetch the links originating from the task given by task_id.
// @Tags Relationship
// @Accept json
// @Produce json
// @Param task_id query int true "Task ID"
// @Success 200 {array} RelationshipResponse
// @Failure 400 {object} ErrorResponse
// @Router /relationships [get]
func (handler *relationshipHandler) List(ctx *gin.Context) {
	raw := ctx.Query("task_id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid task_id %q", raw)
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	rels, err := handler.relationshipService.ListByTaskID(ctx, uint(parsed))
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []RelationshipResponse{}
	for _, rel := range rels {
		listResponse = append(listResponse, toRelationshipResponse(rel))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

func toRelationshipResponse(rel *tasks.TaskRelationship) RelationshipResponse {
	return RelationshipResponse{
		ID:            rel.ID,
		TaskID:        rel.TaskID,
		RelatedTaskID: rel.RelatedTaskID,
		RelType:       string(rel.RelType),
	}
}
